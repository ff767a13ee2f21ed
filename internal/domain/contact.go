package domain

// PersonContact holds the reachable-at details, one per person.
type PersonContact struct {
	Record
	Owned
	TrashMark

	Phone    string  `gorm:"size:128" json:"phone,omitempty"`
	Fax      string  `gorm:"size:128" json:"fax,omitempty"`
	Whatsapp string  `gorm:"size:128" json:"whatsapp,omitempty"`
	Email    string  `gorm:"size:128" json:"email,omitempty"`
	Website  string  `gorm:"size:128" json:"website,omitempty"`
	Privacy  Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (PersonContact) TableName() string { return "person_contacts" }

func (c *PersonContact) Validate() error {
	if c.Privacy != "" && !c.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	for _, f := range []struct{ name, v string }{
		{"phone", c.Phone}, {"fax", c.Fax}, {"whatsapp", c.Whatsapp},
		{"email", c.Email}, {"website", c.Website},
	} {
		if len(f.v) > LenShort {
			return &ValidationError{Field: f.name, Reason: "too long"}
		}
	}
	return nil
}
