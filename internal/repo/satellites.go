package repo

import (
	"gorm.io/gorm"

	"go-personals-service/internal/domain"
)

// Satellites bundles one store per satellite kind.
type Satellites struct {
	Contacts      *SatelliteStore[domain.PersonContact, *domain.PersonContact]
	SocialMedia   *SatelliteStore[domain.SocialMedia, *domain.SocialMedia]
	Addresses     *SatelliteStore[domain.PersonAddress, *domain.PersonAddress]
	Skills        *SatelliteStore[domain.Skill, *domain.Skill]
	Awards        *SatelliteStore[domain.Award, *domain.Award]
	FormalEdu     *SatelliteStore[domain.FormalEducation, *domain.FormalEducation]
	NonFormalEdu  *SatelliteStore[domain.NonFormalEducation, *domain.NonFormalEducation]
	Employments   *SatelliteStore[domain.Employment, *domain.Employment]
	Volunteers    *SatelliteStore[domain.Volunteer, *domain.Volunteer]
	Publications  *SatelliteStore[domain.Publication, *domain.Publication]
	FamilyMembers *SatelliteStore[domain.FamilyMember, *domain.FamilyMember]
}

func NewSatellites(db *gorm.DB) *Satellites {
	return &Satellites{
		Contacts:      NewSatelliteStore[domain.PersonContact, *domain.PersonContact](db),
		SocialMedia:   NewSatelliteStore[domain.SocialMedia, *domain.SocialMedia](db),
		Addresses:     NewSatelliteStore[domain.PersonAddress, *domain.PersonAddress](db),
		Skills:        NewSatelliteStore[domain.Skill, *domain.Skill](db),
		Awards:        NewSatelliteStore[domain.Award, *domain.Award](db),
		FormalEdu:     NewSatelliteStore[domain.FormalEducation, *domain.FormalEducation](db),
		NonFormalEdu:  NewSatelliteStore[domain.NonFormalEducation, *domain.NonFormalEducation](db),
		Employments:   NewSatelliteStore[domain.Employment, *domain.Employment](db),
		Volunteers:    NewSatelliteStore[domain.Volunteer, *domain.Volunteer](db),
		Publications:  NewSatelliteStore[domain.Publication, *domain.Publication](db),
		FamilyMembers: NewSatelliteStore[domain.FamilyMember, *domain.FamilyMember](db),
	}
}
