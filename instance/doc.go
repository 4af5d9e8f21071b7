// Package instance defines the immutable problem data for the Student–Project
// Allocation with Group Building Problem (SPAGP): projects, students, and the
// derived set of mutual partner pairs.
//
// Values constructed by New are never mutated afterwards; the solver's mutable
// state (package solution) only ever reads through this package's accessors.
//
// Construction validates the configuration-error class described for the
// solver: an empty instance, mismatched preference-vector widths, or
// inconsistent group-size bounds abort construction with a sentinel error
// from errors.go rather than surfacing later as a confusing panic deep inside
// the solver.
package instance
