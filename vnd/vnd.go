package vnd

import (
	"github.com/spagp-solver/spagp/movegen"
	"github.com/spagp-solver/spagp/solution"
)

// Config parameterizes one VND run (spec §4.6).
type Config struct {
	// MaxToMove is M, the widest n-tuple width VND will try before giving up.
	MaxToMove int
	// AcrossProjects, when false, restricts a departing group member's
	// destination to the same project (unassigned remains permitted either
	// side); when true, group destinations in any project are allowed.
	AcrossProjects bool
}

// Run performs best-improvement descent: widths n = 1..cfg.MaxToMove,
// resetting to 1 on every applied improvement, until n exceeds MaxToMove
// with no improving move found. Returns whether any move was applied.
func Run(s *solution.State, cfg Config) bool {
	cache := newCombosCache(len(s.Inst.Students))
	improvedAny := false

	for n := 1; n <= cfg.MaxToMove; {
		delta, combo, dests, found := bestMove(s, cache, n, cfg.AcrossProjects)
		if !found || delta <= 0 {
			n++
			continue
		}

		applyTuple(s, combo, dests)
		improvedAny = true
		n = 1
	}

	return improvedAny
}

// bestMove scans every n-student combination and returns the best strictly
// positive combined delta found, with the combination and its destination
// tuple.
func bestMove(s *solution.State, cache *combosCache, n int, acrossProjects bool) (int, []int, []solution.Location, bool) {
	bestDelta := 0
	var bestCombo []int
	var bestDests []solution.Location
	found := false

	for _, combo := range cache.combinations(n) {
		delta, dests, ok := bestDestinationTuple(s, combo, acrossProjects)
		if ok && delta > bestDelta {
			bestDelta = delta
			bestCombo = combo
			bestDests = dests
			found = true
		}
	}

	return bestDelta, bestCombo, bestDests, found
}

// bestDestinationTuple finds the best strictly positive combined delta over
// every ordered destination tuple for combo, using a two-phase temporary
// apply (depart every selected student to the unassigned pool, then search
// arrivals) so that a group which loses some members and gains others
// within the same move is evaluated correctly regardless of enumeration
// order, per spec §4.6's mid-move state update requirement.
func bestDestinationTuple(s *solution.State, combo []int, acrossProjects bool) (int, []solution.Location, bool) {
	n := len(combo)
	origins := make([]solution.Location, n)
	for i, u := range combo {
		origins[i] = s.LocationOf(u)
	}

	destSet := activeDestinations(s)

	mark := s.Mark()
	preObjective := s.CachedObjective()
	defer func() {
		s.RevertTo(mark)
		s.ForceCachedObjective(preObjective)
	}()

	departDelta := 0
	for i, u := range combo {
		d, err := movegen.Apply(s, origins[i], solution.Unassigned, u)
		if err != nil {
			return 0, nil, false
		}
		departDelta += d
	}

	touchedOrigins := make(map[solution.Location]bool)
	for _, loc := range origins {
		if !loc.IsUnassigned() {
			touchedOrigins[loc] = true
		}
	}

	current := make([]solution.Location, n)
	best := 0
	var bestDests []solution.Location
	found := false

	var recurse func(i, accDelta int)
	recurse = func(i, accDelta int) {
		if i == n {
			for loc := range touchedOrigins {
				if s.GroupSize(loc) < s.Inst.Projects[loc.Project].MinSize {
					return
				}
			}
			if accDelta > best {
				best = accDelta
				bestDests = append([]solution.Location(nil), current...)
				found = true
			}
			return
		}

		student := combo[i]
		for _, dest := range destSet {
			if dest == origins[i] {
				continue
			}
			if dest.Kind == solution.LocGroup && !acrossProjects && origins[i].Kind == solution.LocGroup && dest.Project != origins[i].Project {
				continue
			}

			legMark := s.Mark()
			delta, err := movegen.Apply(s, solution.Unassigned, dest, student)
			if err != nil {
				continue
			}
			current[i] = dest
			recurse(i+1, accDelta+delta)
			s.RevertTo(legMark)
		}
	}
	recurse(0, departDelta)

	return best, bestDests, found
}

// activeDestinations returns D: every non-empty group plus the unassigned
// pool, snapshotted once per combo evaluation.
func activeDestinations(s *solution.State) []solution.Location {
	dests := append([]solution.Location{solution.Unassigned}, s.NonEmptyGroupLocations()...)
	return dests
}

// applyTuple commits combo's chosen destinations for real: every selected
// student is relocated from their original location to its paired
// destination, via the unassigned pool as a staging step, exactly like the
// speculative evaluation that selected it.
func applyTuple(s *solution.State, combo []int, dests []solution.Location) {
	origins := make([]solution.Location, len(combo))
	for i, u := range combo {
		origins[i] = s.LocationOf(u)
	}
	for i, u := range combo {
		if _, err := movegen.Apply(s, origins[i], solution.Unassigned, u); err != nil {
			panic("vnd: re-applying a previously validated departure failed: " + err.Error())
		}
	}
	for i, u := range combo {
		if _, err := movegen.Apply(s, solution.Unassigned, dests[i], u); err != nil {
			panic("vnd: re-applying a previously validated arrival failed: " + err.Error())
		}
	}
}
