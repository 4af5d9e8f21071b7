// Package structural implements the founding and dissolution composite
// moves of spec §4.7: each candidate is evaluated as a single atomic
// bundle with one net delta, and only the globally best positive bundle
// across every project and every existing group is ever committed.
//
// Grounded on the teacher's builder package: a constructor closure that
// returns one composite mutation, validated and applied atomically
// (builder/impl_*.go's "Constructor returns a mutation" shape) — here the
// closure produces a Bundle (net delta + ordered legs) instead of mutating
// a graph directly, and is applied by replaying its legs once chosen.
package structural
