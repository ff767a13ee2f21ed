package domain

// SocialMedia holds the public handles, one per person. Twitter and
// instagram are bare usernames, without the @.
type SocialMedia struct {
	Record
	Owned
	TrashMark

	Facebook  string  `gorm:"size:256" json:"facebook,omitempty"` // page URL
	Twitter   string  `gorm:"size:255" json:"twitter,omitempty"`
	Instagram string  `gorm:"size:255" json:"instagram,omitempty"`
	Youtube   string  `gorm:"size:256" json:"youtube,omitempty"` // channel URL
	Privacy   Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (SocialMedia) TableName() string { return "social_media" }

func (s *SocialMedia) Validate() error {
	if s.Privacy != "" && !s.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	if len(s.Twitter) > 255 || len(s.Instagram) > 255 {
		return &ValidationError{Field: "handle", Reason: "too long"}
	}
	return nil
}
