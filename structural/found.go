package structural

import (
	"math/rand"

	"github.com/spagp-solver/spagp/movegen"
	"github.com/spagp-solver/spagp/solution"
)

// evaluateFounding speculatively founds a new group in project and greedily
// fills it, per spec §4.7. State is fully reverted before returning; the
// returned Bundle's legs are replayed for real only if this candidate is
// later chosen as the globally best bundle.
func evaluateFounding(s *solution.State, project int, rng *rand.Rand) (Bundle, bool) {
	proj := s.Inst.Projects[project]
	if s.NumGroups(project) >= proj.MaxGroups {
		return Bundle{}, false
	}

	mark := s.Mark()
	preObjective := s.CachedObjective()
	defer func() {
		s.RevertTo(mark)
		s.PopEmptyGroup(project)
		s.ForceCachedObjective(preObjective)
	}()

	loc := s.OpenGroup(project)

	delta := -proj.SizePenalty * proj.IdealSize
	if s.NumGroups(project) > proj.OfferedGroups {
		delta -= proj.GroupPenalty
	}

	var legs []leg
	for s.GroupSize(loc) < proj.MaxSize {
		student, from, marginal, ok := bestDonor(s, loc, rng)
		if !ok {
			break
		}
		if marginal < 0 && s.GroupSize(loc) >= proj.MinSize {
			break
		}
		if _, err := movegen.Apply(s, from, loc, student); err != nil {
			break
		}
		legs = append(legs, leg{from: from, to: loc, student: student})
		delta += marginal
	}

	if s.GroupSize(loc) < proj.MinSize {
		return Bundle{}, false
	}

	return Bundle{Delta: delta, Founding: true, Project: project, legs: legs}, true
}

// bestDonor picks, with random tie-break among ties, the student whose move
// into loc yields the maximum combined delta, among donors that are either
// unassigned or a group that would stay at or above its project's minimum
// size after losing one member.
func bestDonor(s *solution.State, loc solution.Location, rng *rand.Rand) (student int, from solution.Location, delta int, ok bool) {
	bestDelta := 0
	var candidates []int
	var candidateFrom []solution.Location
	haveBest := false

	for u := range s.Inst.Students {
		donor := s.LocationOf(u)
		if donor == loc {
			continue
		}
		if donor.Kind == solution.LocGroup {
			if s.GroupSize(donor) <= s.Inst.Projects[donor.Project].MinSize {
				continue
			}
		}

		d := movegen.Delta(s, donor, loc, u)
		switch {
		case !haveBest || d > bestDelta:
			bestDelta = d
			candidates = []int{u}
			candidateFrom = []solution.Location{donor}
			haveBest = true
		case d == bestDelta:
			candidates = append(candidates, u)
			candidateFrom = append(candidateFrom, donor)
		}
	}

	if !haveBest {
		return 0, solution.Location{}, 0, false
	}

	i := rng.Intn(len(candidates))

	return candidates[i], candidateFrom[i], bestDelta, true
}
