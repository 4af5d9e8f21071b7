package structural

import (
	"math/rand"
	"sort"

	"github.com/spagp-solver/spagp/instance"
	"github.com/spagp-solver/spagp/movegen"
	"github.com/spagp-solver/spagp/solution"
)

// evaluateDissolution speculatively empties loc's group, sending each
// member to the destination with maximum arriving_delta, per spec §4.7.
// State is fully reverted before returning.
func evaluateDissolution(s *solution.State, loc solution.Location, rng *rand.Rand) (Bundle, bool) {
	project := loc.Project
	proj := s.Inst.Projects[project]

	mark := s.Mark()
	preObjective := s.CachedObjective()
	defer func() {
		s.RevertTo(mark)
		s.ForceCachedObjective(preObjective)
	}()

	members := append([]int(nil), s.Members(loc)...)
	sort.Ints(members)

	delta := 0
	for _, u := range members {
		delta -= s.Inst.Students[u].Prefs[project]
	}
	delta -= s.RewardBilateral * mutualPairsWithin(s.Inst, members)
	if s.NumNonEmptyGroups(project) > proj.OfferedGroups {
		delta += proj.GroupPenalty
	}
	dev := len(members) - proj.IdealSize
	if dev < 0 {
		dev = -dev
	}
	delta += proj.SizePenalty * dev

	active := make([]solution.Location, 0, len(s.NonEmptyGroupLocations()))
	for _, candidate := range s.NonEmptyGroupLocations() {
		if candidate != loc {
			active = append(active, candidate)
		}
	}

	var legs []leg
	for _, u := range members {
		dest, marginal := bestAcceptor(s, active, u, rng)
		if err := s.Relocate(loc, dest, u); err != nil {
			continue
		}
		legs = append(legs, leg{from: loc, to: dest, student: u})
		delta += marginal

		if !dest.IsUnassigned() && s.GroupSize(dest) >= s.Inst.Projects[dest.Project].MaxSize {
			kept := active[:0]
			for _, a := range active {
				if a != dest {
					kept = append(kept, a)
				}
			}
			active = kept
		}
	}

	return Bundle{Delta: delta, Founding: false, Project: project, legs: legs}, true
}

// bestAcceptor picks, with random tie-break among ties, the destination
// among active ∪ {unassigned} with maximum arriving_delta for u.
func bestAcceptor(s *solution.State, active []solution.Location, u int, rng *rand.Rand) (solution.Location, int) {
	bestDelta := movegen.ArrivingDelta(s, solution.Unassigned, u)
	candidates := []solution.Location{solution.Unassigned}

	for _, loc := range active {
		if s.GroupSize(loc) >= s.Inst.Projects[loc.Project].MaxSize {
			continue
		}
		d := movegen.ArrivingDelta(s, loc, u)
		switch {
		case d > bestDelta:
			bestDelta = d
			candidates = []solution.Location{loc}
		case d == bestDelta:
			candidates = append(candidates, loc)
		}
	}

	return candidates[rng.Intn(len(candidates))], bestDelta
}

// mutualPairsWithin counts mutual pairs with both members in the given set.
func mutualPairsWithin(inst *instance.Instance, members []int) int {
	count := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if inst.IsMutualPair(members[i], members[j]) {
				count++
			}
		}
	}

	return count
}
