package domain

import "time"

type Publication struct {
	Record
	Owned
	TrashMark

	Title         string     `gorm:"size:256;not null" json:"title"`
	Description   string     `gorm:"size:256" json:"description,omitempty"`
	Publisher     string     `gorm:"size:256" json:"publisher,omitempty"`
	DatePublished *time.Time `json:"datePublished,omitempty"`
	Permalink     string     `gorm:"size:256" json:"permalink,omitempty"`
	Privacy       Privacy    `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (Publication) TableName() string { return "publications" }

func (p *Publication) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.Privacy != "" && !p.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
