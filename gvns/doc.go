// Package gvns is the outer General Variable Neighborhood Search driver
// (spec §4.8): it cycles a fixed neighborhood schedule of structural moves,
// shake, and VND, accepting an iteration when it improves on the best
// objective seen so far and otherwise replaying the reversal log to
// reverse it, until an iteration or wall-time budget is exhausted.
package gvns
