package domain

import "time"

type Award struct {
	Record
	Owned
	TrashMark

	Name        string     `gorm:"size:256;not null" json:"name"`
	Description string     `gorm:"size:256" json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Privacy     Privacy    `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (Award) TableName() string { return "awards" }

func (a *Award) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if a.Privacy != "" && !a.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
