package instance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spagp-solver/spagp/instance"
)

func twoProjectSpecs() []instance.ProjectSpec {
	return []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 1, IdealGroupSize: 2, MinGroupSize: 2, MaxGroupSize: 2},
		{Name: "B", DesiredNumGroups: 1, MaxNumGroups: 1, IdealGroupSize: 2, MinGroupSize: 2, MaxGroupSize: 2},
	}
}

func fourStudentSpecs() []instance.StudentSpec {
	return []instance.StudentSpec{
		{Name: "s0", FavPartners: []int{1}, ProjectPrefs: []int{3, 0}},
		{Name: "s1", FavPartners: []int{0}, ProjectPrefs: []int{3, 0}},
		{Name: "s2", FavPartners: []int{3}, ProjectPrefs: []int{0, 3}},
		{Name: "s3", FavPartners: []int{2}, ProjectPrefs: []int{0, 3}},
	}
}

func TestNew_ValidInstance(t *testing.T) {
	inst, err := instance.New(twoProjectSpecs(), fourStudentSpecs())
	require.NoError(t, err)
	require.Len(t, inst.Projects, 2)
	require.Len(t, inst.Students, 4)
	assert.Equal(t, 2, inst.MutualPairCount())
	assert.True(t, inst.IsMutualPair(0, 1))
	assert.True(t, inst.IsMutualPair(1, 0))
	assert.True(t, inst.IsMutualPair(2, 3))
	assert.False(t, inst.IsMutualPair(0, 2))
}

func TestNew_OneSidedPartnerIsNotMutual(t *testing.T) {
	students := []instance.StudentSpec{
		{Name: "s0", FavPartners: []int{1}, ProjectPrefs: []int{1, 1}},
		{Name: "s1", FavPartners: nil, ProjectPrefs: []int{1, 1}},
	}
	inst, err := instance.New(twoProjectSpecs(), students)
	require.NoError(t, err)
	assert.Equal(t, 0, inst.MutualPairCount())
	assert.False(t, inst.IsMutualPair(0, 1))
}

func TestNew_EmptyInstance(t *testing.T) {
	_, err := instance.New(nil, fourStudentSpecs())
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)

	_, err = instance.New(twoProjectSpecs(), nil)
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestNew_InvalidGroupCount(t *testing.T) {
	projects := twoProjectSpecs()
	projects[0].MaxNumGroups = 0
	_, err := instance.New(projects, fourStudentSpecs())
	assert.True(t, errors.Is(err, instance.ErrInvalidGroupCount))
}

func TestNew_InvalidGroupSizeBounds(t *testing.T) {
	projects := twoProjectSpecs()
	projects[0].MinGroupSize = 3 // > ideal
	_, err := instance.New(projects, fourStudentSpecs())
	assert.True(t, errors.Is(err, instance.ErrInvalidGroupSizeBounds))
}

func TestNew_NegativePenalty(t *testing.T) {
	projects := twoProjectSpecs()
	projects[0].PenaltyExtraGroup = -1
	_, err := instance.New(projects, fourStudentSpecs())
	assert.True(t, errors.Is(err, instance.ErrNegativePenalty))
}

func TestNew_PreferenceWidthMismatch(t *testing.T) {
	students := fourStudentSpecs()
	students[0].ProjectPrefs = []int{1}
	_, err := instance.New(twoProjectSpecs(), students)
	assert.True(t, errors.Is(err, instance.ErrPreferenceWidthMismatch))
}

func TestNew_InvalidPartnerReference(t *testing.T) {
	students := fourStudentSpecs()
	students[0].FavPartners = []int{0} // self-reference
	_, err := instance.New(twoProjectSpecs(), students)
	assert.True(t, errors.Is(err, instance.ErrInvalidPartnerReference))

	students = fourStudentSpecs()
	students[0].FavPartners = []int{99}
	_, err = instance.New(twoProjectSpecs(), students)
	assert.True(t, errors.Is(err, instance.ErrInvalidPartnerReference))
}

func TestCountPartnersIn(t *testing.T) {
	inst, err := instance.New(twoProjectSpecs(), fourStudentSpecs())
	require.NoError(t, err)
	assert.Equal(t, 1, inst.CountPartnersIn(0, []int{1, 2, 3}))
	assert.Equal(t, 0, inst.CountPartnersIn(0, []int{2, 3}))
}
