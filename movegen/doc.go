// Package movegen computes the marginal objective change of moving a
// single student into or out of a location, and applies a single relocation
// together with its delta in one call.
//
// These are the atomic building blocks spec'd as leaving_delta/
// arriving_delta: composite, multi-student moves (shake, VND n-tuples,
// structural bundles) are built by the shake/vnd/structural packages by
// chaining calls into this package around solution.State.Relocate, not by
// anything exposed here.
package movegen
