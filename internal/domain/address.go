package domain

import "strings"

// PersonAddress is a postal address; a person may keep several and
// flag one as primary.
type PersonAddress struct {
	Record
	Owned
	TrashMark

	IsPrimary bool    `gorm:"not null;default:true" json:"isPrimary"`
	Name      string  `gorm:"size:256" json:"name,omitempty"` // e.g. Home Address or Office Address
	Street    string  `gorm:"size:512" json:"street,omitempty"`
	City      string  `gorm:"size:128" json:"city,omitempty"`
	Province  string  `gorm:"size:128" json:"province,omitempty"`
	Country   string  `gorm:"size:128" json:"country,omitempty"`
	Zipcode   string  `gorm:"size:128" json:"zipcode,omitempty"`
	Privacy   Privacy `gorm:"size:16;not null;default:me" json:"privacy"`
}

func (PersonAddress) TableName() string { return "person_addresses" }

// FullAddress joins the populated parts with ", ".
func (a *PersonAddress) FullAddress() string {
	var parts []string
	for _, p := range []string{a.Street, a.City, a.Province, a.Country, a.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (a *PersonAddress) Validate() error {
	if a.Privacy != "" && !a.Privacy.Valid() {
		return &ValidationError{Field: "privacy", Reason: "outside the closed set"}
	}
	if len(a.Street) > LenLong {
		return &ValidationError{Field: "street", Reason: "too long"}
	}
	return nil
}
