package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spagp-solver/spagp/instance"
	"github.com/spagp-solver/spagp/solution"
)

func TestRecompute_PreferencesAndBilateralReward(t *testing.T) {
	projects := []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 1, IdealGroupSize: 2, MinGroupSize: 1, MaxGroupSize: 2},
	}
	students := []instance.StudentSpec{
		{Name: "s0", FavPartners: []int{1}, ProjectPrefs: []int{5}},
		{Name: "s1", FavPartners: []int{0}, ProjectPrefs: []int{7}},
	}
	inst, err := instance.New(projects, students)
	require.NoError(t, err)

	s := solution.NewEmpty(inst, 2, 3)
	loc := s.OpenGroup(0)
	require.NoError(t, s.Relocate(solution.Unassigned, loc, 0))
	require.NoError(t, s.Relocate(solution.Unassigned, loc, 1))
	s.ClearLog()

	// 5 + 7 preference, +2 bilateral reward, no deviation (group at ideal size).
	assert.Equal(t, 14, s.Recompute())
}

func TestRecompute_UnassignedPenaltyAndSizeDeviation(t *testing.T) {
	projects := []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 1, IdealGroupSize: 2, MinGroupSize: 1, MaxGroupSize: 3, PenaltyDeviationSize: 2},
	}
	students := []instance.StudentSpec{
		{Name: "s0", ProjectPrefs: []int{4}},
		{Name: "s1", ProjectPrefs: []int{0}},
	}
	inst, err := instance.New(projects, students)
	require.NoError(t, err)

	s := solution.NewEmpty(inst, 2, 3)
	loc := s.OpenGroup(0)
	require.NoError(t, s.Relocate(solution.Unassigned, loc, 0))
	s.ClearLog()

	// 4 preference, group size 1 vs ideal 2 -> deviation penalty 2, one
	// unassigned student -> penalty 3.
	assert.Equal(t, 4-2-3, s.Recompute())
}

func TestRecompute_ExtraGroupPenalty(t *testing.T) {
	projects := []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 2, IdealGroupSize: 1, MinGroupSize: 1, MaxGroupSize: 1, PenaltyExtraGroup: 5},
	}
	students := []instance.StudentSpec{
		{Name: "s0", ProjectPrefs: []int{0}},
		{Name: "s1", ProjectPrefs: []int{0}},
	}
	inst, err := instance.New(projects, students)
	require.NoError(t, err)

	s := solution.NewEmpty(inst, 0, 0)
	locA := s.OpenGroup(0)
	locB := s.OpenGroup(0)
	require.NoError(t, s.Relocate(solution.Unassigned, locA, 0))
	require.NoError(t, s.Relocate(solution.Unassigned, locB, 1))
	s.ClearLog()

	// Two non-empty groups against one offered group -> one extra group penalty.
	assert.Equal(t, -5, s.Recompute())
}

func TestRecompute_EmptyGroupsIgnoredForSizeAndExtraPenalty(t *testing.T) {
	projects := []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 2, IdealGroupSize: 1, MinGroupSize: 1, MaxGroupSize: 1, PenaltyExtraGroup: 5, PenaltyDeviationSize: 9},
	}
	students := []instance.StudentSpec{
		{Name: "s0", ProjectPrefs: []int{0}},
	}
	inst, err := instance.New(projects, students)
	require.NoError(t, err)

	s := solution.NewEmpty(inst, 0, 0)
	s.OpenGroup(0) // founded but never populated

	assert.Equal(t, 0, s.Recompute())
}
