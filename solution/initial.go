package solution

import (
	"sort"

	"github.com/spagp-solver/spagp/instance"
)

// InitialSolution builds the round-robin greedy seed described in spec §4.4:
// repeatedly, for each project with capacity for another group (n_g(p) <
// g°(p)) and at least ideal_group_size still-unassigned candidates on its
// waitlist, seat the top ideal_group_size of them (ranked by preference
// descending, ties broken by student id ascending) as a new full-ideal-size
// group. Students left over when no project can open another group remain
// unassigned.
//
// Grounded on original_source/vns_on_student_assignment.py's
// _build_initial_projects_waitlists / _initial_solution: waitlists are
// precomputed once per project and the outer loop runs until a full pass
// over all projects adds no group.
func InitialSolution(inst *instance.Instance, rewardBilateral, penaltyUnassigned int) *State {
	s := NewEmpty(inst, rewardBilateral, penaltyUnassigned)

	waitlists := buildWaitlists(inst)

	for addedAny := true; addedAny; {
		addedAny = false
		for p, proj := range inst.Projects {
			if s.NumGroups(p) >= proj.OfferedGroups {
				continue
			}
			candidates := waitlists[p]
			unassignedCandidates := make([]int, 0, len(candidates))
			for _, u := range candidates {
				if s.loc[u].IsUnassigned() {
					unassignedCandidates = append(unassignedCandidates, u)
					if len(unassignedCandidates) == proj.IdealSize {
						break
					}
				}
			}
			if len(unassignedCandidates) < proj.IdealSize {
				continue
			}

			loc := s.OpenGroup(p)
			for _, u := range unassignedCandidates {
				if err := s.Relocate(Unassigned, loc, u); err != nil {
					panic("solution: initial solution seeding violated its own invariants: " + err.Error())
				}
			}
			s.ClearLog()
			addedAny = true
		}
	}

	v := s.Recompute()
	s.setObjectives(v)

	return s
}

// buildWaitlists returns, for each project, every student id ordered by
// preference for that project descending, ties broken by student id
// ascending.
func buildWaitlists(inst *instance.Instance) [][]int {
	waitlists := make([][]int, len(inst.Projects))
	for p := range inst.Projects {
		ids := make([]int, len(inst.Students))
		for i := range inst.Students {
			ids[i] = i
		}
		sort.SliceStable(ids, func(i, j int) bool {
			a, b := ids[i], ids[j]
			prefA, prefB := inst.Students[a].Prefs[p], inst.Students[b].Prefs[p]
			if prefA != prefB {
				return prefA > prefB
			}
			return a < b
		})
		waitlists[p] = ids
	}

	return waitlists
}
