package spagp_test

import (
	"context"
	"fmt"

	spagp "github.com/spagp-solver/spagp"
	"github.com/spagp-solver/spagp/gvns"
	"github.com/spagp-solver/spagp/instance"
)

// ExampleSolve runs the umbrella convenience function end to end.
func ExampleSolve() {
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

	snap, err := spagp.Solve(context.Background(), inst, cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(snap.Objective)
	// Output: 8
}
