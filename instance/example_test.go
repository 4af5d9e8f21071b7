package instance_test

import (
	"fmt"

	"github.com/spagp-solver/spagp/instance"
)

// ExampleNew builds a minimal one-project, two-student instance and reports
// the derived mutual-partner count.
func ExampleNew() {
	projects := []instance.ProjectSpec{
		{Name: "Graph Mining", DesiredNumGroups: 1, MaxNumGroups: 2, IdealGroupSize: 2, MinGroupSize: 2, MaxGroupSize: 2},
	}
	students := []instance.StudentSpec{
		{Name: "Ada", FavPartners: []int{1}, ProjectPrefs: []int{3}},
		{Name: "Bo", FavPartners: []int{0}, ProjectPrefs: []int{3}},
	}

	inst, err := instance.New(projects, students)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inst.MutualPairCount())
	// Output: 1
}
