package shake

import (
	"fmt"
	"math/rand"

	"github.com/spagp-solver/spagp/movegen"
	"github.com/spagp-solver/spagp/solution"
)

// Config parameterizes one shake call (spec §4.5).
type Config struct {
	// N is the number of departures to attempt.
	N int
	// AcrossProjects restricts group-resident arrivals to other projects
	// when true, to the same project when false.
	AcrossProjects bool
	// AssignmentBias (β) scales the probability of picking an unassigned
	// departure over a group-resident one.
	AssignmentBias float64
	// UnassignmentProb (α) is the probability a group-resident departure is
	// sent to the unassigned pool rather than another group.
	UnassignmentProb float64
}

type pendingDeparture struct {
	student int
	from    solution.Location
}

// Run performs one shake: selects up to cfg.N departures, chooses an arrival
// for each, and applies each (departure, arrival) pair in order via
// movegen.Apply, folding deltas into s's cached objective and extending its
// reversal log. Returns the number of moves actually applied, which may be
// fewer than cfg.N if no further departure could be found.
func Run(s *solution.State, cfg Config, rng *rand.Rand) (int, error) {
	departures := selectDepartures(s, cfg, rng)

	applied := 0
	for _, dep := range departures {
		to := chooseArrival(s, cfg, dep, rng)
		if _, err := movegen.Apply(s, dep.from, to, dep.student); err != nil {
			return applied, fmt.Errorf("shake: applying move for student %d: %w", dep.student, err)
		}
		applied++
	}

	return applied, nil
}

// selectDepartures picks up to cfg.N distinct students to depart, without
// mutating s. Group-resident picks are checked against a running tally of
// already-chosen departures from the same group so the group's post-shake
// size cannot fall below its project's minimum.
func selectDepartures(s *solution.State, cfg Config, rng *rand.Rand) []pendingDeparture {
	totalStudents := len(s.Inst.Students)
	chosenStudent := make(map[int]bool, cfg.N)
	tentative := make(map[solution.Location]int)

	chosen := make([]pendingDeparture, 0, cfg.N)
	for len(chosen) < cfg.N {
		unassignedCandidates := unchosenUnassigned(s, chosenStudent)

		bias := float64(len(unassignedCandidates)) / float64(totalStudents) * cfg.AssignmentBias
		if bias > 1 {
			bias = 1
		}

		if len(unassignedCandidates) > 0 && rng.Float64() < bias {
			student := unassignedCandidates[rng.Intn(len(unassignedCandidates))]
			chosen = append(chosen, pendingDeparture{student: student, from: solution.Unassigned})
			chosenStudent[student] = true
			continue
		}

		groupLoc, members, ok := pickEligibleGroup(s, tentative, chosenStudent, rng)
		if ok {
			student := members[rng.Intn(len(members))]
			chosen = append(chosen, pendingDeparture{student: student, from: groupLoc})
			chosenStudent[student] = true
			tentative[groupLoc]++
			continue
		}

		if len(unassignedCandidates) > 0 {
			student := unassignedCandidates[rng.Intn(len(unassignedCandidates))]
			chosen = append(chosen, pendingDeparture{student: student, from: solution.Unassigned})
			chosenStudent[student] = true
			continue
		}

		break
	}

	return chosen
}

// unchosenUnassigned returns every currently-unassigned student not already
// committed to a departure this shake.
func unchosenUnassigned(s *solution.State, chosenStudent map[int]bool) []int {
	out := make([]int, 0, s.UnassignedCount())
	for i := 0; i < s.UnassignedCount(); i++ {
		u := s.UnassignedAt(i)
		if !chosenStudent[u] {
			out = append(out, u)
		}
	}

	return out
}

// pickEligibleGroup uniformly picks a non-empty group whose size, net of
// already-tentatively-departed members and one more, would still respect its
// project's minimum group size, and returns a snapshot of its not-yet-chosen
// members.
func pickEligibleGroup(s *solution.State, tentative map[solution.Location]int, chosenStudent map[int]bool, rng *rand.Rand) (solution.Location, []int, bool) {
	var eligible []solution.Location
	for p := 0; p < s.NumProjects(); p++ {
		minSize := s.Inst.Projects[p].MinSize
		for _, loc := range s.GroupLocations(p) {
			size := s.GroupSize(loc)
			if size == 0 {
				continue
			}
			if size-tentative[loc]-1 < minSize {
				continue
			}
			available := 0
			for _, u := range s.Members(loc) {
				if !chosenStudent[u] {
					available++
				}
			}
			if available == 0 {
				continue
			}
			eligible = append(eligible, loc)
		}
	}
	if len(eligible) == 0 {
		return solution.Location{}, nil, false
	}

	loc := eligible[rng.Intn(len(eligible))]
	members := make([]int, 0, s.GroupSize(loc))
	for _, u := range s.Members(loc) {
		if !chosenStudent[u] {
			members = append(members, u)
		}
	}

	return loc, members, true
}

// chooseArrival picks a destination for dep per spec §4.5's arrival rules.
func chooseArrival(s *solution.State, cfg Config, dep pendingDeparture, rng *rand.Rand) solution.Location {
	if dep.from.IsUnassigned() {
		return chooseGroupArrivalForUnassigned(s, rng)
	}

	if rng.Float64() < cfg.UnassignmentProb {
		return solution.Unassigned
	}

	target, ok := chooseGroupArrivalExcluding(s, dep.from, cfg.AcrossProjects, rng)
	if !ok {
		return solution.Unassigned
	}

	return target
}

// chooseGroupArrivalForUnassigned uniformly picks a project with at least
// one non-empty group below its max size, then uniformly a group within it.
func chooseGroupArrivalForUnassigned(s *solution.State, rng *rand.Rand) solution.Location {
	var candidates []solution.Location
	for p := 0; p < s.NumProjects(); p++ {
		maxSize := s.Inst.Projects[p].MaxSize
		for _, loc := range s.GroupLocations(p) {
			if s.GroupSize(loc) > 0 && s.GroupSize(loc) < maxSize {
				candidates = append(candidates, loc)
			}
		}
	}
	if len(candidates) == 0 {
		return solution.Unassigned
	}

	return candidates[rng.Intn(len(candidates))]
}

// chooseGroupArrivalExcluding picks a group other than current, restricted
// to the same project (acrossProjects==false) or to other projects
// (acrossProjects==true), uniformly among groups below max size.
func chooseGroupArrivalExcluding(s *solution.State, current solution.Location, acrossProjects bool, rng *rand.Rand) (solution.Location, bool) {
	var candidates []solution.Location
	for p := 0; p < s.NumProjects(); p++ {
		if acrossProjects && p == current.Project {
			continue
		}
		if !acrossProjects && p != current.Project {
			continue
		}
		maxSize := s.Inst.Projects[p].MaxSize
		for _, loc := range s.GroupLocations(p) {
			if loc == current {
				continue
			}
			if s.GroupSize(loc) < maxSize {
				candidates = append(candidates, loc)
			}
		}
	}
	if len(candidates) == 0 {
		return solution.Location{}, false
	}

	return candidates[rng.Intn(len(candidates))], true
}
