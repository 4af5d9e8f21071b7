package selfcheck

import "github.com/spagp-solver/spagp/solution"

// Report describes every invariant violation found by Audit. A nil Report
// (returned by Audit when nothing is wrong) means the state is clean; a
// non-nil Report is populated with exactly the violated fields, everything
// else left at its zero value.
type Report struct {
	// ObjectiveMismatch is set when CachedObjective() != Recompute() (P4).
	ObjectiveMismatch bool
	ClaimedObjective  int
	ActualObjective   int

	// GroupsTooSmall lists non-empty groups with |G| < s_(p) (P1, lower half).
	GroupsTooSmall []solution.Location
	// GroupsTooBig lists non-empty groups with |G| > s^(p) (P1, upper half).
	GroupsTooBig []solution.Location
	// TooManyGroups lists project ids with n_ne(p) > g^(p) (P2).
	TooManyGroups []int

	// InconsistentStudents is set when the union of all group memberships
	// and the unassigned pool does not account for every student exactly
	// once (P3).
	InconsistentStudents bool
	// MissingStudents lists student ids absent from every container.
	MissingStudents []int
	// DuplicateStudents lists student ids present in more than one
	// container, or more than once within the same container.
	DuplicateStudents []int
}

// Clean reports whether r describes no violations. A nil Report is clean by
// definition, so callers may write `if !selfcheck.Audit(s).Clean() { ... }`
// without a separate nil check.
func (r *Report) Clean() bool {
	if r == nil {
		return true
	}

	return !r.ObjectiveMismatch &&
		len(r.GroupsTooSmall) == 0 &&
		len(r.GroupsTooBig) == 0 &&
		len(r.TooManyGroups) == 0 &&
		!r.InconsistentStudents
}
