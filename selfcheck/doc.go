// Package selfcheck audits a solution.State against the invariants a
// neighborhood visit must preserve (group size bounds, group count bounds,
// the student bijection, and cached-vs-recomputed objective equality).
//
// Audit never returns an error: it returns a nil Report (whose Clean() is
// true) when every invariant held, and otherwise a Report that carries one
// field per violated invariant. This mirrors the validate-and-collect style used
// elsewhere in this codebase for multi-field input validation, generalized
// here from "reject bad input" to "describe what went wrong" since a
// self-check failure is a debugging aid, not a caller mistake.
package selfcheck
