package domain

import "time"

// FamilyMember records a relative; Relationship is free text for
// relations outside the closed Relation set.
type FamilyMember struct {
	Record
	Owned
	TrashMark

	Relation     FamilyRelation `gorm:"size:4;not null;default:99" json:"relation"`
	Relationship string         `gorm:"size:256" json:"relationship,omitempty"`
	Name         string         `gorm:"size:256;not null" json:"name"`
	DateOfBirth  *time.Time     `json:"dateOfBirth,omitempty"`
	PlaceOfBirth string         `gorm:"size:255" json:"placeOfBirth,omitempty"`
	Job          string         `gorm:"size:256" json:"job,omitempty"`
	Address      string         `gorm:"size:512" json:"address,omitempty"`
	Privacy      Privacy        `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (FamilyMember) TableName() string { return "family_members" }

func (f *FamilyMember) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if f.Relation != "" && !f.Relation.Valid() {
		return &ValidationError{Field: "relation", Reason: "outside the closed set"}
	}
	if f.Privacy != "" && !f.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
