package domain

// Field length tiers shared across the schema.
const (
	LenShort    = 128
	LenMedium   = 256
	LenLong     = 512
	LenXLong    = 1024
	LenText     = 2048
	LenRichText = 10000
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// Privacy declares which audience class may view a record. The value
// is descriptive metadata; enforcement lives in the caller's
// authorization layer.
type Privacy string

const (
	PrivacyAnyone    Privacy = "anyone"
	PrivacyUsers     Privacy = "users"
	PrivacyFriends   Privacy = "friends"
	PrivacyStudents  Privacy = "students"
	PrivacyTeachers  Privacy = "teachers"
	PrivacyEmployees Privacy = "employees"
	PrivacyManagers  Privacy = "managers"
	PrivacyOnlyMe    Privacy = "me"
)

func (p Privacy) Valid() bool {
	switch p {
	case PrivacyAnyone, PrivacyUsers, PrivacyFriends, PrivacyStudents,
		PrivacyTeachers, PrivacyEmployees, PrivacyManagers, PrivacyOnlyMe:
		return true
	}
	return false
}

type EducationStatus string

const (
	EducationFinished   EducationStatus = "FNS"
	EducationOngoing    EducationStatus = "ONG"
	EducationUnfinished EducationStatus = "UNF"
)

func (s EducationStatus) Valid() bool {
	return s == EducationFinished || s == EducationOngoing || s == EducationUnfinished
}

type EmploymentType string

const (
	EmploymentContract  EmploymentType = "CTR"
	EmploymentFixed     EmploymentType = "FXD"
	EmploymentOutsource EmploymentType = "OSR"
	EmploymentElse      EmploymentType = "ELS"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentContract, EmploymentFixed, EmploymentOutsource, EmploymentElse:
		return true
	}
	return false
}

type ActiveStatus string

const (
	StatusActive   ActiveStatus = "ACT"
	StatusInactive ActiveStatus = "INC"
)

func (s ActiveStatus) Valid() bool { return s == StatusActive || s == StatusInactive }

type FamilyRelation string

const (
	RelationFather  FamilyRelation = "1"
	RelationMother  FamilyRelation = "2"
	RelationSibling FamilyRelation = "3"
	RelationChild   FamilyRelation = "4"
	RelationHusband FamilyRelation = "5"
	RelationWife    FamilyRelation = "6"
	RelationOther   FamilyRelation = "99"
)

func (r FamilyRelation) Valid() bool {
	switch r {
	case RelationFather, RelationMother, RelationSibling, RelationChild,
		RelationHusband, RelationWife, RelationOther:
		return true
	}
	return false
}
