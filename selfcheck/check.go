package selfcheck

import "github.com/spagp-solver/spagp/solution"

// Audit checks P1-P4 of the testable-properties list against s's current
// state and returns a Report describing every violation, or nil if s is
// clean. Audit never mutates s and never returns an error: a self-check
// failure is a debugging aid for testing-mode callers (see gvns.Reporter),
// not a condition a caller can recover from by branching on an error value.
func Audit(s *solution.State) *Report {
	r := &Report{}

	checkGroupSizes(s, r)
	checkGroupCounts(s, r)
	checkBijection(s, r)
	checkObjective(s, r)

	if r.Clean() {
		return nil
	}

	return r
}

// checkGroupSizes verifies P1: every non-empty group's size lies in
// [s_(p), s^(p)].
func checkGroupSizes(s *solution.State, r *Report) {
	for p := 0; p < s.NumProjects(); p++ {
		proj := s.Inst.Projects[p]
		for _, loc := range s.GroupLocations(p) {
			size := s.GroupSize(loc)
			if size == 0 {
				continue
			}
			if size < proj.MinSize {
				r.GroupsTooSmall = append(r.GroupsTooSmall, loc)
			}
			if size > proj.MaxSize {
				r.GroupsTooBig = append(r.GroupsTooBig, loc)
			}
		}
	}
}

// checkGroupCounts verifies P2: every project's non-empty group count is at
// most its max_num_groups.
func checkGroupCounts(s *solution.State, r *Report) {
	for p := 0; p < s.NumProjects(); p++ {
		if s.NumNonEmptyGroups(p) > s.Inst.Projects[p].MaxGroups {
			r.TooManyGroups = append(r.TooManyGroups, p)
		}
	}
}

// checkBijection verifies P3: every student appears in exactly one
// container (a group, or the unassigned pool).
func checkBijection(s *solution.State, r *Report) {
	seen := make([]int, len(s.Inst.Students))

	for p := 0; p < s.NumProjects(); p++ {
		for _, loc := range s.GroupLocations(p) {
			for _, u := range s.Members(loc) {
				seen[u]++
			}
		}
	}
	for i := 0; i < s.UnassignedCount(); i++ {
		seen[s.UnassignedAt(i)]++
	}

	for u, count := range seen {
		switch {
		case count == 0:
			r.MissingStudents = append(r.MissingStudents, u)
		case count > 1:
			r.DuplicateStudents = append(r.DuplicateStudents, u)
		}
	}

	r.InconsistentStudents = len(r.MissingStudents) > 0 || len(r.DuplicateStudents) > 0
}

// checkObjective verifies P4: the incrementally maintained cached objective
// equals a full recomputation from scratch.
func checkObjective(s *solution.State, r *Report) {
	claimed := s.CachedObjective()
	actual := s.Recompute()
	if claimed != actual {
		r.ObjectiveMismatch = true
		r.ClaimedObjective = claimed
		r.ActualObjective = actual
	}
}
