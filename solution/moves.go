package solution

// Relocate moves student from "from" to "to" and appends the inverse move to
// the reversal log. It is the sole move primitive described by the spec:
// every other package (movegen, shake, vnd, structural) moves a student only
// through this method. Opening and removing empty groups (OpenGroup,
// PopEmptyGroup, PruneEmptyGroups) and undoing logged moves (RevertTo) are
// separate methods.
//
// Preconditions: student must currently be at "from"; "to" must either be
// Unassigned or a (project, group) whose size is strictly below the
// project's MaxSize. A violation is a programmer error in the caller (never
// reachable from user input) and is refused with a sentinel error rather
// than silently corrupting the graph.
//
// from == to == Unassigned is a legal no-op: the log still gains an entry so
// Revert's bookkeeping stays simple, but membership is unchanged.
func (s *State) Relocate(from, to Location, student int) error {
	if s.loc[student] != from {
		return ErrStudentNotAtLocation
	}
	if to.Kind == LocGroup {
		if err := s.checkGroupRef(to); err != nil {
			return err
		}
		if len(s.projects[to.Project].groups[to.Group].members) >= s.Inst.Projects[to.Project].MaxSize {
			return ErrDestinationFull
		}
	}
	if from.Kind == LocGroup {
		if err := s.checkGroupRef(from); err != nil {
			return err
		}
	}

	if from == to {
		s.log = append(s.log, reverseEntry{student: student, from: to, to: from})
		return nil
	}

	s.removeFrom(from, student)
	s.insertInto(to, student)
	s.loc[student] = to

	s.log = append(s.log, reverseEntry{student: student, from: to, to: from})

	return nil
}

func (s *State) checkGroupRef(loc Location) error {
	if loc.Project < 0 || loc.Project >= len(s.projects) {
		return ErrUnknownProject
	}
	if loc.Group < 0 || loc.Group >= len(s.projects[loc.Project].groups) {
		return ErrUnknownGroup
	}

	return nil
}

func (s *State) removeFrom(loc Location, student int) {
	if loc.Kind == LocUnassigned {
		s.removeUnassigned(student)
		return
	}
	g := &s.projects[loc.Project].groups[loc.Group]
	members := g.members
	for i, id := range members {
		if id == student {
			last := len(members) - 1
			members[i] = members[last]
			g.members = members[:last]
			return
		}
	}
}

func (s *State) insertInto(loc Location, student int) {
	if loc.Kind == LocUnassigned {
		s.addUnassigned(student)
		return
	}
	g := &s.projects[loc.Project].groups[loc.Group]
	g.members = append(g.members, student)
}

func (s *State) removeUnassigned(student int) {
	idx, ok := s.unassignedIndex[student]
	if !ok {
		return
	}
	last := len(s.unassigned) - 1
	movedID := s.unassigned[last]
	s.unassigned[idx] = movedID
	s.unassigned = s.unassigned[:last]
	s.unassignedIndex[movedID] = idx
	delete(s.unassignedIndex, student)
}

func (s *State) addUnassigned(student int) {
	s.unassignedIndex[student] = len(s.unassigned)
	s.unassigned = append(s.unassigned, student)
}

// LogLen returns the number of entries currently in the reversal log.
func (s *State) LogLen() int {
	return len(s.log)
}

// ClearLog discards the reversal log without replaying it. Call this once a
// neighborhood visit's moves have been permanently adopted.
func (s *State) ClearLog() {
	s.log = s.log[:0]
}

// Revert replays the reversal log in LIFO order, undoing every move applied
// since the log was last cleared, and then clears the log. It is the
// driver's rollback step after a non-improving neighborhood visit.
func (s *State) Revert() {
	s.RevertTo(0)
}

// Mark returns the current reversal-log length, to be passed to a later
// RevertTo call. Used by searches (vnd, structural) that need to undo a
// speculative suffix of moves without discarding moves applied before the
// search began.
func (s *State) Mark() int {
	return len(s.log)
}

// RevertTo undoes every logged move back down to length mark (mark <=
// LogLen()), in LIFO order, and truncates the log to mark. Moves logged
// before mark are left untouched.
func (s *State) RevertTo(mark int) {
	for i := len(s.log) - 1; i >= mark; i-- {
		entry := s.log[i]
		// Replay via the raw membership primitives, not Relocate, so that
		// reverting never itself grows the log or re-validates capacity
		// (the move being undone was valid when first applied).
		s.removeFrom(entry.from, entry.student)
		s.insertInto(entry.to, entry.student)
		s.loc[entry.student] = entry.to
	}
	s.log = s.log[:mark]
}
