package domain

import "time"

// History is the shared field group for dated institution records.
type History struct {
	Name        string          `gorm:"size:50;not null" json:"name"`
	Institution string          `gorm:"size:256;not null" json:"institution"`
	DateStart   time.Time       `json:"dateStart"`
	DateEnd     time.Time       `json:"dateEnd"`
	Status      EducationStatus `gorm:"size:5;not null;default:ONG" json:"status"`
}

func (h *History) validate() error {
	if h.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(h.Name) > 50 {
		return &ValidationError{Field: "name", Reason: "too long"}
	}
	if h.Institution == "" {
		return &ValidationError{Field: "institution", Reason: "must not be empty"}
	}
	if h.Status != "" && !h.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "outside the closed set"}
	}
	return nil
}

// FormalEducation is a degree-granting entry, e.g. a university major.
type FormalEducation struct {
	Record
	Owned
	TrashMark
	History

	Major   string  `gorm:"size:256" json:"major,omitempty"` // ex: Information System or Accounting
	Privacy Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (FormalEducation) TableName() string { return "formal_educations" }

func (e *FormalEducation) Validate() error {
	if err := e.History.validate(); err != nil {
		return err
	}
	if e.Privacy != "" && !e.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}

// NonFormalEducation covers courses, trainings and certifications.
type NonFormalEducation struct {
	Record
	Owned
	TrashMark
	History

	Description string  `gorm:"size:256" json:"description,omitempty"`
	Privacy     Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (NonFormalEducation) TableName() string { return "non_formal_educations" }

func (e *NonFormalEducation) Validate() error {
	if err := e.History.validate(); err != nil {
		return err
	}
	if e.Privacy != "" && !e.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
