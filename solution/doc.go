// Package solution implements the mutable SPAGP solution graph: projects own
// groups, groups reference students by id, and every student is either in
// exactly one group or in the unassigned pool.
//
// State is the root mutable structure threaded through movegen, shake, vnd,
// structural, and gvns. It owns:
//
//   - the project → group → student membership graph,
//   - the unassigned pool,
//   - the cached objective value and the best-seen objective,
//   - a LIFO reversal log sufficient to undo every move applied since the
//     log was last cleared.
//
// Concurrency: State is not safe for concurrent use. The solver is
// single-threaded and synchronous by design (see gvns); callers that want
// parallel restarts must give each goroutine its own State built from a
// shared, read-only instance.Instance.
//
// Ownership: a Location is a tagged union — either the unassigned-pool
// sentinel or a (project, group) pair — identified by an explicit Kind field
// rather than by a nil-able pointer, so "is this the unassigned pool" is
// always a plain equality check (see types.go).
package solution
