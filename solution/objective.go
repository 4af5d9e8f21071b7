package solution

// Recompute performs the full objective recomputation from scratch (spec
// §4.1), used only to seed the cache (InitialSolution) and to audit it
// (selfcheck). It must never be called on the GVNS hot path.
//
//	Σ prefs[u→p(u)]
//	+ R_bi · |{(a,b)∈MutualPairs : group(a)=group(b)}|
//	− P_un · |unassigned|
//	− Σ_p  π_g(p) · max(0, n_ne(p) − g°(p))
//	− Σ_{p,G non-empty} π_s(p) · ||G| − s*(p)|
func (s *State) Recompute() int {
	total := 0

	for p := range s.projects {
		proj := s.Inst.Projects[p]
		nonEmpty := 0
		for _, g := range s.projects[p].groups {
			if len(g.members) == 0 {
				continue
			}
			nonEmpty++
			for _, u := range g.members {
				total += s.Inst.Students[u].Prefs[p]
			}
			size := len(g.members)
			dev := size - proj.IdealSize
			if dev < 0 {
				dev = -dev
			}
			total -= proj.SizePenalty * dev
		}
		overflow := nonEmpty - proj.OfferedGroups
		if overflow > 0 {
			total -= proj.GroupPenalty * overflow
		}
	}

	total += s.RewardBilateral * s.countSatisfiedPairs()
	total -= s.PenaltyUnassigned * len(s.unassigned)

	return total
}

// countSatisfiedPairs counts mutual pairs (a,b) currently co-located in the
// same non-empty group.
func (s *State) countSatisfiedPairs() int {
	count := 0
	for p := range s.projects {
		for _, g := range s.projects[p].groups {
			members := g.members
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					if s.Inst.IsMutualPair(members[i], members[j]) {
						count++
					}
				}
			}
		}
	}

	return count
}
