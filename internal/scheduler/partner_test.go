package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadgrid/timetable/pkg/model"
)

func sharedCourse(code, branch, section, sharedWith string) *model.Course {
	return &model.Course{
		Code:       code,
		Name:       code,
		Type:       model.TypeLecture,
		Branch:     branch,
		Section:    section,
		Year:       2,
		SharedWith: sharedWith,
		Faculty:    "Prof " + branch,
	}
}

func TestFindPartnerMutualMatch(t *testing.T) {
	st := NewState(model.HalfFirst)
	a := sharedCourse("CS201", "CSE", "ALL", "ECE")
	b := sharedCourse("CS201", "ECE", "ALL", "CSE")
	pool := []*model.Course{a, b}

	require.Equal(t, b, FindPartner(a, pool, st))
	// Symmetric before either side is assigned.
	require.Equal(t, a, FindPartner(b, pool, st))
}

func TestFindPartnerUnilateralDeclarationDoesNotPair(t *testing.T) {
	st := NewState(model.HalfFirst)
	a := sharedCourse("CS201", "CSE", "ALL", "ECE")
	b := sharedCourse("CS201", "ECE", "ALL", "")
	pool := []*model.Course{a, b}

	assert.Nil(t, FindPartner(a, pool, st))
	assert.Nil(t, FindPartner(b, pool, st))
}

func TestFindPartnerSkipsAssignedAndSelf(t *testing.T) {
	st := NewState(model.HalfFirst)
	a := sharedCourse("CS201", "CSE", "ALL", "ECE")
	b := sharedCourse("CS201", "ECE", "ALL", "CSE")
	pool := []*model.Course{a, b}

	st.MarkAssigned(b)
	assert.Nil(t, FindPartner(a, pool, st))
}

func TestFindPartnerRejectsDifferentCodeOrYear(t *testing.T) {
	st := NewState(model.HalfFirst)
	a := sharedCourse("CS201", "CSE", "ALL", "ECE")
	differentCode := sharedCourse("CS202", "ECE", "ALL", "CSE")
	differentYear := sharedCourse("CS201", "ECE", "ALL", "CSE")
	differentYear.Year = 3

	assert.Nil(t, FindPartner(a, []*model.Course{a, differentCode, differentYear}, st))
}

func TestFindPartnerRejectsSameCohortIdentity(t *testing.T) {
	st := NewState(model.HalfFirst)
	a := sharedCourse("CS201", "CSE", "A", "CSE-A")
	duplicate := sharedCourse("CS201", "CSE", "A", "CSE-A")

	assert.Nil(t, FindPartner(a, []*model.Course{a, duplicate}, st))
}

func TestFindPartnerTokenForms(t *testing.T) {
	st := NewState(model.HalfFirst)
	// Composite branch-section tokens, case-insensitive, semicolons.
	a := sharedCourse("CS201", "CSE", "A", "ece-b; cs999")
	b := sharedCourse("CS201", "ECE", "B", "CSE-A")
	require.Equal(t, b, FindPartner(a, []*model.Course{a, b}, st))

	// Course-code token also resolves.
	c := sharedCourse("CS201", "CSE", "A", "cs201")
	d := sharedCourse("CS201", "ECE", "B", "CS201")
	require.Equal(t, d, FindPartner(c, []*model.Course{c, d}, st))
}
