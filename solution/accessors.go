package solution

// LocationOf returns student's current location.
func (s *State) LocationOf(student int) Location {
	return s.loc[student]
}

// GroupSize returns the number of students at loc. loc must be LocGroup;
// calling with Unassigned panics by design (callers always branch on
// loc.Kind first when the size of "the unassigned pool" isn't what they
// mean).
func (s *State) GroupSize(loc Location) int {
	if loc.Kind != LocGroup {
		panic("solution: GroupSize called with a non-group location")
	}

	return len(s.projects[loc.Project].groups[loc.Group].members)
}

// Members returns a read-only view of the students at loc. The returned
// slice aliases internal storage and MUST NOT be mutated by callers; it is
// invalidated by the next Relocate/Revert touching the same group.
func (s *State) Members(loc Location) []int {
	if loc.Kind == LocUnassigned {
		return s.unassigned
	}

	return s.projects[loc.Project].groups[loc.Group].members
}

// NumGroups returns n_g(p): the number of groups instantiated for project p,
// including any currently-empty group (e.g. freshly founded, not yet
// pruned).
func (s *State) NumGroups(project int) int {
	return len(s.projects[project].groups)
}

// NumNonEmptyGroups returns n_ne(p): the number of project p's groups with
// at least one member.
func (s *State) NumNonEmptyGroups(project int) int {
	count := 0
	for _, g := range s.projects[project].groups {
		if len(g.members) > 0 {
			count++
		}
	}

	return count
}

// NumProjects returns the number of projects in the underlying instance.
func (s *State) NumProjects() int {
	return len(s.projects)
}

// GroupLocations returns the Location of every group (empty or not)
// currently instantiated for project p, in slice order.
func (s *State) GroupLocations(project int) []Location {
	groups := s.projects[project].groups
	out := make([]Location, len(groups))
	for i := range groups {
		out[i] = AtGroup(project, i)
	}

	return out
}

// NonEmptyGroupLocations returns every non-empty group's Location across all
// projects, in project-then-group order. This is the active destination set
// D (minus the unassigned sentinel) from the VND specification.
func (s *State) NonEmptyGroupLocations() []Location {
	var out []Location
	for p := range s.projects {
		for g, grp := range s.projects[p].groups {
			if len(grp.members) > 0 {
				out = append(out, AtGroup(p, g))
			}
		}
	}

	return out
}

// UnassignedCount returns |unassigned|.
func (s *State) UnassignedCount() int {
	return len(s.unassigned)
}

// UnassignedAt returns the unassigned student at position i (0 <= i <
// UnassignedCount()); used by shake for uniform-without-replacement sampling
// over the live pool via swap-remove-free indexing.
func (s *State) UnassignedAt(i int) int {
	return s.unassigned[i]
}

// CachedObjective returns the solver's incrementally maintained objective
// value.
func (s *State) CachedObjective() int {
	return s.cachedObjective
}

// BestObjective returns the best cached objective observed so far.
func (s *State) BestObjective() int {
	return s.bestObjective
}

// AddObjective applies delta to the cached objective. Callers (movegen)
// compute delta from leaving/arriving evaluators around their own Relocate
// call.
func (s *State) AddObjective(delta int) {
	s.cachedObjective += delta
}

// AdoptBest sets BestObjective to the current CachedObjective; called by the
// gvns driver when a neighborhood visit improves on the best-seen value.
func (s *State) AdoptBest() {
	s.bestObjective = s.cachedObjective
}

// setObjectives forcibly sets both the cached and best objective, used only
// by InitialSolution to seed both from one full recomputation.
func (s *State) setObjectives(v int) {
	s.cachedObjective = v
	s.bestObjective = v
}

// RestoreCachedToBest resets CachedObjective to BestObjective; used by the
// gvns driver after Revert (whose membership rollback already restores the
// graph, but the objective must be restored explicitly since Revert does
// not touch cachedObjective).
func (s *State) RestoreCachedToBest() {
	s.cachedObjective = s.bestObjective
}

// ForceCachedObjective sets CachedObjective directly, bypassing AddObjective's
// delta bookkeeping. Used by vnd/structural to restore the objective after a
// speculative exploration whose membership was already undone via RevertTo
// (membership and objective are tracked independently; RevertTo only
// restores the former).
func (s *State) ForceCachedObjective(v int) {
	s.cachedObjective = v
}
