package structural

import (
	"math/rand"

	"github.com/spagp-solver/spagp/solution"
)

// Run evaluates every founding candidate (one per project with spare group
// capacity) and every dissolution candidate (one per currently non-empty
// group), commits the globally best strictly-positive-delta bundle if any,
// and reports the delta applied. Returns (0, false) if no bundle improves.
func Run(s *solution.State, rng *rand.Rand) (int, bool) {
	bestDelta := 0
	var best Bundle
	found := false

	for p := 0; p < s.NumProjects(); p++ {
		if b, ok := evaluateFounding(s, p, rng); ok && b.Delta > bestDelta {
			bestDelta = b.Delta
			best = b
			found = true
		}
	}

	for _, loc := range s.NonEmptyGroupLocations() {
		if b, ok := evaluateDissolution(s, loc, rng); ok && b.Delta > bestDelta {
			bestDelta = b.Delta
			best = b
			found = true
		}
	}

	if !found {
		return 0, false
	}

	apply(s, best)

	return best.Delta, true
}

// apply commits a chosen bundle for real: re-founds the group (if this was
// a founding bundle — the same project state as during evaluation
// guarantees it reopens at the same index) and replays every recorded leg.
func apply(s *solution.State, b Bundle) {
	if b.Founding {
		s.OpenGroup(b.Project)
	}
	for _, lg := range b.legs {
		if err := s.Relocate(lg.from, lg.to, lg.student); err != nil {
			panic("structural: replaying a previously validated leg failed: " + err.Error())
		}
	}
	s.AddObjective(b.Delta)
}
