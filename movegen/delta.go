package movegen

import "github.com/spagp-solver/spagp/solution"

// LeavingDelta returns the objective change from student departing loc,
// evaluated against the state as it stands right now (student still
// present at loc). Grounded on spec §4.3's leaving_delta.
func LeavingDelta(s *solution.State, loc solution.Location, student int) int {
	if loc.IsUnassigned() {
		return s.PenaltyUnassigned
	}

	project := loc.Project
	members := s.Members(loc)
	proj := s.Inst.Projects[project]

	delta := -s.Inst.Students[student].Prefs[project]
	delta -= s.RewardBilateral * s.Inst.CountPartnersIn(student, members)

	if len(members) > proj.IdealSize {
		delta += proj.SizePenalty
	} else {
		delta -= proj.SizePenalty
	}

	return delta
}

// ArrivingDelta returns the objective change from student arriving at loc,
// evaluated against the state as it stands right now (student not yet
// present at loc). Grounded on spec §4.3's arriving_delta.
func ArrivingDelta(s *solution.State, loc solution.Location, student int) int {
	if loc.IsUnassigned() {
		return -s.PenaltyUnassigned
	}

	project := loc.Project
	members := s.Members(loc)
	proj := s.Inst.Projects[project]

	delta := s.Inst.Students[student].Prefs[project]
	delta += s.RewardBilateral * s.Inst.CountPartnersIn(student, members)

	if len(members) < proj.IdealSize {
		delta += proj.SizePenalty
	} else {
		delta -= proj.SizePenalty
	}

	return delta
}

// Delta returns the net objective change of relocating student from "from"
// to "to", without mutating state. Callers enumerating candidate moves use
// this to rank them before committing to one via Apply.
func Delta(s *solution.State, from, to solution.Location, student int) int {
	return LeavingDelta(s, from, student) + ArrivingDelta(s, to, student)
}

// Apply computes Delta, performs the relocation, and folds the delta into
// the state's cached objective in one step. Returns the delta applied.
func Apply(s *solution.State, from, to solution.Location, student int) (int, error) {
	delta := Delta(s, from, to, student)
	if err := s.Relocate(from, to, student); err != nil {
		return 0, err
	}
	s.AddObjective(delta)

	return delta, nil
}
