package solution

import "errors"

// Sentinel errors for internal-consistency violations in move primitives.
// These are only reachable via a bug in a caller (vnd/shake/structural);
// production code never triggers them and testing-mode callers surface them
// as part of a structured selfcheck.Report rather than these raw errors.
var (
	// ErrStudentNotAtLocation indicates the student is not currently at the
	// claimed "from" location.
	ErrStudentNotAtLocation = errors.New("solution: student not at claimed location")

	// ErrDestinationFull indicates the destination group is already at its
	// project's max_group_size.
	ErrDestinationFull = errors.New("solution: destination group at capacity")

	// ErrUnknownProject indicates a project index outside [0, len(Projects)).
	ErrUnknownProject = errors.New("solution: unknown project")

	// ErrUnknownGroup indicates a group index outside the project's group
	// slice.
	ErrUnknownGroup = errors.New("solution: unknown group")

	// ErrMaxGroupsReached names a founding move on a project already at
	// max_num_groups. OpenGroup does not check this and never returns it;
	// callers check NumGroups themselves.
	ErrMaxGroupsReached = errors.New("solution: project already at max group count")

	// ErrEmptyReversalLog names a revert with nothing logged. Revert and
	// RevertTo never return it: with an empty log they do nothing.
	ErrEmptyReversalLog = errors.New("solution: nothing to revert")
)
