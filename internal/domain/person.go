package domain

import (
	"strings"
	"time"
)

// Person is the central record; every satellite holds an owning
// reference back to it.
type Person struct {
	Record
	TrashMark

	FullName string `gorm:"size:256;not null" json:"fullname"`
	NickName string `gorm:"size:256" json:"nickname,omitempty"`

	// Title block. ShowTitle prefixes Title ("Mr"/"Mrs"),
	// ShowNameOnly suppresses the academic titles.
	ShowTitle    bool   `gorm:"not null;default:false" json:"showTitle"`
	ShowNameOnly bool   `gorm:"not null;default:false" json:"showNameOnly"`
	Title        string `gorm:"size:256" json:"title,omitempty"`
	FrontTitle   string `gorm:"size:256" json:"frontTitle,omitempty"`
	BackTitle    string `gorm:"size:256" json:"backTitle,omitempty"`

	Gender       Gender     `gorm:"size:1;not null;default:M" json:"gender"`
	Religion     string     `gorm:"size:255" json:"religion,omitempty"`
	Nation       string     `gorm:"size:255" json:"nation,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	PlaceOfBirth string     `gorm:"size:255" json:"placeOfBirth,omitempty"`

	// AccountID binds the person to a login account, one to one.
	AccountID *string `gorm:"size:36;uniqueIndex" json:"accountId,omitempty"`

	Contact          *PersonContact       `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	SocialMedia      *SocialMedia         `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"socialMedia,omitempty"`
	Addresses        []PersonAddress      `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Skills           []Skill              `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Awards           []Award              `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"awards,omitempty"`
	FormalEdu        []FormalEducation    `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"formalEducations,omitempty"`
	NonFormalEdu     []NonFormalEducation `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"nonFormalEducations,omitempty"`
	WorkHistories    []Employment         `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"workHistories,omitempty"`
	Volunteers       []Volunteer          `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"volunteers,omitempty"`
	Publications     []Publication        `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"publications,omitempty"`
	FamilyMembers    []FamilyMember       `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"familyMembers,omitempty"`
}

func (Person) TableName() string { return "persons" }

func (p *Person) HasAccount() bool { return p.AccountID != nil && *p.AccountID != "" }

// CanTrash forbids trashing a person while a login account is bound;
// the account must be released first.
func (p *Person) CanTrash() error {
	if p.HasAccount() {
		return &DeletionForbiddenError{Record: "person", Reason: "a login account is still bound"}
	}
	return nil
}

// FullNameWithTitle renders the display name: optional title prefix,
// front title with a trailing dot, the full name, then ", <back title>".
// ShowNameOnly drops both academic titles.
func (p *Person) FullNameWithTitle() string {
	var parts []string
	if p.Title != "" && p.ShowTitle {
		parts = append(parts, p.Title)
	}
	if p.FrontTitle != "" && !p.ShowNameOnly {
		parts = append(parts, p.FrontTitle+".")
	}
	if p.FullName != "" {
		parts = append(parts, p.FullName)
	}
	if p.BackTitle != "" && !p.ShowNameOnly {
		parts = append(parts, ", "+p.BackTitle)
	}
	return strings.Join(parts, " ")
}

func (p *Person) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return &ValidationError{Field: "fullname", Reason: "must not be empty"}
	}
	if len(p.FullName) > LenMedium {
		return &ValidationError{Field: "fullname", Reason: "too long"}
	}
	if !p.Gender.Valid() {
		return &ValidationError{Field: "gender", Reason: "outside the closed set"}
	}
	return nil
}
