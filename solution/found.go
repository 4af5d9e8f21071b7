package solution

// OpenGroup instantiates a new empty group for project and returns its
// Location. It is the structural "founding" primitive (spec §4.7); the net
// delta of founding (including the dummy size/group penalty applied to the
// empty group) is computed by the structural package, which calls OpenGroup
// and then relocates students into it one at a time via Relocate.
//
// OpenGroup does not check MaxGroups itself — structural decides which
// projects are eligible (n_g(p) < g^(p)) before calling this, since the
// eligibility check and the penalty computation share the same n_g(p) read.
func (s *State) OpenGroup(project int) Location {
	groups := &s.projects[project]
	idx := len(groups.groups)
	groups.groups = append(groups.groups, group{})

	return AtGroup(project, idx)
}

// PopEmptyGroup removes project's trailing group if it is both the last
// group in the slice and currently empty, returning whether it did so. It
// undoes a speculative OpenGroup that the caller (structural) decided not
// to keep, once every membership change made against that group has
// already been unwound via RevertTo.
func (s *State) PopEmptyGroup(project int) bool {
	groups := &s.projects[project]
	n := len(groups.groups)
	if n == 0 || len(groups.groups[n-1].members) != 0 {
		return false
	}
	groups.groups = groups.groups[:n-1]

	return true
}
