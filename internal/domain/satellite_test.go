package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAddress(t *testing.T) {
	a := PersonAddress{
		Street:  "1 Main St",
		City:    "Springfield",
		Country: "US",
	}
	assert.Equal(t, "1 Main St, Springfield, US", a.FullAddress())

	assert.Equal(t, "", (&PersonAddress{}).FullAddress())

	a.Zipcode = "12345"
	assert.Equal(t, "1 Main St, Springfield, US, 12345", a.FullAddress())
}

func TestSkillLevelPercent(t *testing.T) {
	for level, want := range map[int]int{0: 0, 7: 70, 10: 100} {
		s := Skill{Level: level}
		assert.Equal(t, want, s.LevelPercent())
	}
}

func TestSkillValidate(t *testing.T) {
	s := Skill{Name: "Go", Level: 7}
	require.NoError(t, s.Validate())

	s.Level = 11
	assert.True(t, IsValidation(s.Validate()))
	s.Level = -1
	assert.True(t, IsValidation(s.Validate()))

	s.Level = 5
	s.Name = ""
	assert.True(t, IsValidation(s.Validate()))
}

func TestHistoryValidate(t *testing.T) {
	e := FormalEducation{History: History{Name: "BSc", Institution: "State University"}}
	require.NoError(t, e.Validate())

	e.Institution = ""
	assert.True(t, IsValidation(e.Validate()))

	e.Institution = "State University"
	e.Name = strings.Repeat("x", 51)
	assert.True(t, IsValidation(e.Validate()))

	e.Name = "BSc"
	e.Status = "XYZ"
	assert.True(t, IsValidation(e.Validate()))
}

func TestEmploymentValidate(t *testing.T) {
	e := Employment{
		History:    History{Name: "Backend", Institution: "Acme"},
		Department: "Engineering",
		Position:   "Engineer",
		Employment: EmploymentFixed,
	}
	require.NoError(t, e.Validate())

	e.Position = ""
	assert.True(t, IsValidation(e.Validate()))

	e.Position = "Engineer"
	e.Employment = "TMP"
	assert.True(t, IsValidation(e.Validate()))
}

func TestFamilyMemberValidate(t *testing.T) {
	f := FamilyMember{Name: "John Doe", Relation: RelationFather}
	require.NoError(t, f.Validate())

	f.Relation = "7"
	assert.True(t, IsValidation(f.Validate()))

	f.Relation = RelationOther
	require.NoError(t, f.Validate())

	f.Name = ""
	assert.True(t, IsValidation(f.Validate()))
}

func TestClosedSets(t *testing.T) {
	assert.True(t, GenderMale.Valid())
	assert.False(t, Gender("L").Valid())
	assert.False(t, Gender("").Valid())

	for _, p := range []Privacy{
		PrivacyAnyone, PrivacyUsers, PrivacyFriends, PrivacyStudents,
		PrivacyTeachers, PrivacyEmployees, PrivacyManagers, PrivacyOnlyMe,
	} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Privacy("public").Valid())

	assert.True(t, EducationOngoing.Valid())
	assert.False(t, EducationStatus("DONE").Valid())
	assert.True(t, StatusActive.Valid())
	assert.False(t, ActiveStatus("OFF").Valid())
}

func TestContactValidate(t *testing.T) {
	c := PersonContact{Email: "jane@example.com", Privacy: PrivacyFriends}
	require.NoError(t, c.Validate())

	c.Phone = strings.Repeat("9", LenShort+1)
	assert.True(t, IsValidation(c.Validate()))

	c.Phone = "555-0100"
	c.Privacy = "everyone"
	assert.True(t, IsValidation(c.Validate()))
}
