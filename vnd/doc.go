// Package vnd implements Variable Neighborhood Descent (spec §4.6): a
// best-improvement local search over n-tuples of single-student moves,
// n ascending from 1 to a configured maximum, resetting to 1 on every
// improving step.
//
// Composite feasibility (a group may not shrink below its project's
// minimum size, or be emptied, net of every departure and arrival the same
// move makes)
// is resolved by applying a candidate move's departures and arrivals for
// real against the live *solution.State and reading the resulting sizes,
// then reverting — rather than by maintaining a separate per-group
// "required inflow" ledger alongside the search. Both are equivalent
// readings of the same rule; this one reuses solution.State's own
// bookkeeping instead of duplicating it.
package vnd
