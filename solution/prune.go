package solution

// PruneEmptyGroups removes every empty group from every project, compacting
// remaining groups to dense indices and fixing up loc[] for every member of
// a group whose index shifted.
//
// Callers MUST only call this between neighborhood visits (reversal log
// empty, no Location value held by a caller survives across the call): the
// GVNS driver does so once per outer iteration, after adopting or reverting.
func (s *State) PruneEmptyGroups() {
	for p := range s.projects {
		groups := s.projects[p].groups
		kept := groups[:0]
		for _, g := range groups {
			if len(g.members) == 0 {
				continue
			}
			newIdx := len(kept)
			kept = append(kept, g)
			for _, u := range g.members {
				s.loc[u] = AtGroup(p, newIdx)
			}
		}
		s.projects[p].groups = kept
	}
}
