package gvns_test

import (
	"context"
	"fmt"

	"github.com/spagp-solver/spagp/gvns"
	"github.com/spagp-solver/spagp/instance"
)

// ExampleRun solves a tiny two-student, one-project instance whose only
// feasible full assignment is also optimal.
func ExampleRun() {
	projects := []instance.ProjectSpec{
		{Name: "A", DesiredNumGroups: 1, MaxNumGroups: 1, IdealGroupSize: 2, MinGroupSize: 2, MaxGroupSize: 2},
	}
	students := []instance.StudentSpec{
		{Name: "s0", FavPartners: []int{1}, ProjectPrefs: []int{3}},
		{Name: "s1", FavPartners: []int{0}, ProjectPrefs: []int{3}},
	}
	inst, err := instance.New(projects, students)
	if err != nil {
		panic(err)
	}

	cfg := gvns.DefaultConfig()
	cfg.Seed = 1
	cfg.MaxIterations = 5

	snap, err := gvns.Run(context.Background(), inst, cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(snap.Objective, len(snap.Unassigned))
	// Output: 8 0
}
