package instance

import "errors"

// Sentinel errors for instance construction. Callers MUST use errors.Is to
// branch on semantics; these are never wrapped with formatted strings at the
// definition site (context is attached with %w at the call site instead).
var (
	// ErrEmptyInstance indicates zero projects or zero students were supplied.
	ErrEmptyInstance = errors.New("instance: empty project or student list")

	// ErrInvalidGroupCount indicates offered/max group counts are non-positive
	// or max_num_groups < desired_num_groups for some project.
	ErrInvalidGroupCount = errors.New("instance: invalid group count bounds")

	// ErrInvalidGroupSizeBounds indicates min/ideal/max group size are not in
	// the required order (1 <= min <= ideal <= max) for some project.
	ErrInvalidGroupSizeBounds = errors.New("instance: invalid group size bounds")

	// ErrNegativePenalty indicates a negative penalty coefficient was supplied.
	ErrNegativePenalty = errors.New("instance: negative penalty coefficient")

	// ErrPreferenceWidthMismatch indicates a student's project-preference
	// vector length does not equal the number of projects.
	ErrPreferenceWidthMismatch = errors.New("instance: preference vector width mismatch")

	// ErrInvalidPartnerReference indicates a favorite-partner id is out of
	// range or refers to the student themself.
	ErrInvalidPartnerReference = errors.New("instance: invalid favorite-partner reference")
)
