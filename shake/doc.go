// Package shake implements the randomized perturbation step of the GVNS
// outer loop (spec §4.5): pick N departures, then an arrival for each, and
// apply them in order via the move primitive.
//
// Randomness is entirely driven by one caller-supplied *rand.Rand; shake
// never creates its own source, so a run is reproducible end to end as long
// as the caller seeds deterministically (see rng.go, adapted from
// tsp/rng.go's SplitMix64 stream-derivation pattern).
package shake
