package domain

import "time"

// Volunteer is an organizational engagement outside employment.
type Volunteer struct {
	Record
	Owned
	TrashMark

	Organization string       `gorm:"size:256;not null" json:"organization"`
	Position     string       `gorm:"size:256;not null" json:"position"`
	Description  string       `gorm:"size:256" json:"description,omitempty"`
	DateStart    time.Time    `json:"dateStart"`
	DateEnd      time.Time    `json:"dateEnd"`
	Status       ActiveStatus `gorm:"size:5;not null;default:ACT" json:"status"`
	Privacy      Privacy      `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (Volunteer) TableName() string { return "volunteers" }

func (v *Volunteer) Validate() error {
	if v.Organization == "" {
		return &ValidationError{Field: "organization", Reason: "must not be empty"}
	}
	if v.Position == "" {
		return &ValidationError{Field: "position", Reason: "must not be empty"}
	}
	if v.Status != "" && !v.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "outside the closed set"}
	}
	if v.Privacy != "" && !v.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
