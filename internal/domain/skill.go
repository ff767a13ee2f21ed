package domain

// Skill is a self-assessed ability on a 0-10 scale.
type Skill struct {
	Record
	Owned
	TrashMark

	Name        string  `gorm:"size:256;not null" json:"name"`
	Description string  `gorm:"size:256" json:"description,omitempty"`
	Level       int     `gorm:"not null" json:"level"` // 0..10
	Privacy     Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (Skill) TableName() string { return "skills" }

// LevelPercent maps the 0-10 level onto a percentage.
func (s *Skill) LevelPercent() int { return s.Level * 10 }

func (s *Skill) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if s.Level < 0 || s.Level > 10 {
		return &ValidationError{Field: "level", Reason: "must be between 0 and 10"}
	}
	if s.Privacy != "" && !s.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	return nil
}
