package solution

import "sort"

// Snapshot is an immutable, read-only export of a State's assignment: the
// final output artifact described in spec §6 (External Interfaces). Unlike
// State, a Snapshot owns its slices outright and is safe to retain or hand
// to a reporter after the State that produced it keeps mutating.
type Snapshot struct {
	// Objective is the solution's cached objective value at the moment the
	// snapshot was taken.
	Objective int

	// Groups holds every non-empty group, keyed by project id; Groups[p][g]
	// lists the member student ids of project p's g'th non-empty group.
	Groups [][][]int

	// Unassigned lists every currently-unassigned student id, ascending.
	Unassigned []int
}

// Snapshot captures the current assignment as an owned, independent copy.
func (s *State) Snapshot() Snapshot {
	groups := make([][][]int, len(s.projects))
	for p := range s.projects {
		for _, g := range s.projects[p].groups {
			if len(g.members) == 0 {
				continue
			}
			members := make([]int, len(g.members))
			copy(members, g.members)
			groups[p] = append(groups[p], members)
		}
	}

	unassigned := make([]int, len(s.unassigned))
	copy(unassigned, s.unassigned)
	sort.Ints(unassigned)

	return Snapshot{
		Objective:  s.cachedObjective,
		Groups:     groups,
		Unassigned: unassigned,
	}
}
