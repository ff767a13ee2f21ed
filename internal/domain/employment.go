package domain

// Employment is a work-history entry.
type Employment struct {
	Record
	Owned
	TrashMark
	History

	Department  string         `gorm:"size:256;not null" json:"department"`
	Position    string         `gorm:"size:256;not null" json:"position"`
	Description string         `gorm:"size:256" json:"description,omitempty"`
	Employment  EmploymentType `gorm:"size:5;not null;default:CTR" json:"employment"`
	Privacy     Privacy        `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (Employment) TableName() string { return "employments" }

func (e *Employment) Validate() error {
	if err := e.History.validate(); err != nil {
		return err
	}
	if e.Position == "" {
		return &ValidationError{Field: "position", Reason: "must not be empty"}
	}
	if e.Employment != "" && !e.Employment.Valid() {
		return &ValidationError{Field: "employment", Reason: "outside the closed set"}
	}
	if e.Privacy != "" && !e.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
