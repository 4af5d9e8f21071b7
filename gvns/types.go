package gvns

import (
	"errors"
	"time"
)

// Configuration-error sentinels (spec §7, taxonomy 1): fail fast at run
// start, before any state is produced.
var (
	// ErrInvalidProbability indicates UnassignmentProb is outside [0,1].
	ErrInvalidProbability = errors.New("gvns: unassignment probability must be in [0,1]")
	// ErrInvalidBias indicates AssignmentBias is negative.
	ErrInvalidBias = errors.New("gvns: assignment bias must be >= 0")
	// ErrInvalidNeighborhoodRange indicates MinNeighborhood/MaxNeighborhood
	// are non-positive or out of order.
	ErrInvalidNeighborhoodRange = errors.New("gvns: neighborhood range must satisfy 1 <= min <= max")
	// ErrInvalidBudget indicates MaxIterations and TimeLimit are both
	// non-positive, leaving no termination condition.
	ErrInvalidBudget = errors.New("gvns: at least one of max iterations or time limit must be positive")
)

// Default knobs (spec §4.8 and §6).
const (
	DefaultAssignmentBias   = 10.0
	DefaultUnassignmentProb = 0.05
	DefaultMaxIterations    = 40
	DefaultTimeLimit        = 300 * time.Second
	DefaultMinNeighborhood  = 1
	DefaultMaxNeighborhood  = 6
)

// Config collects every tunable of one GVNS run (spec §6, "Solver
// configuration"). Zero value is not meaningful; use DefaultConfig() and
// override fields as needed.
type Config struct {
	// RewardBilateral (R_bi) and PenaltyUnassigned (P_un) parameterize the
	// objective function itself; they are threaded through to the
	// solution.State built for this run.
	RewardBilateral   int
	PenaltyUnassigned int

	// MinNeighborhood and MaxNeighborhood bound k (spec §4.8: k_min, k_max).
	MinNeighborhood int
	MaxNeighborhood int

	// MaxIterations and TimeLimit are the two termination conditions; a run
	// stops at whichever is reached first. Zero disables that condition,
	// but at least one must be positive.
	MaxIterations int
	TimeLimit     time.Duration

	// AssignmentBias (β) and UnassignmentProb (α) parameterize shake.
	AssignmentBias   float64
	UnassignmentProb float64

	// Seed initializes the run's single RNG stream (spec §5: "all
	// randomness is drawn from one seeded generator"). Zero is a valid,
	// deterministic seed.
	Seed int64

	// Reporter observes the run's progress; see report.go. Defaults to a
	// no-op Reporter if left nil.
	Reporter Reporter
}

// DefaultConfig returns a Config populated with the spec's stated defaults
// (§4.8: β=10, α=0.05, max_iterations=40, time_limit=300s) and the
// canonical k_min=1, k_max=6 neighborhood range.
func DefaultConfig() Config {
	return Config{
		RewardBilateral:   2,
		PenaltyUnassigned: 3,
		MinNeighborhood:   DefaultMinNeighborhood,
		MaxNeighborhood:   DefaultMaxNeighborhood,
		MaxIterations:     DefaultMaxIterations,
		TimeLimit:         DefaultTimeLimit,
		AssignmentBias:    DefaultAssignmentBias,
		UnassignmentProb:  DefaultUnassignmentProb,
		Seed:              0,
		Reporter:          noopReporter{},
	}
}

// Validate enforces the configuration-error taxonomy (spec §7): probability
// out of [0,1], negative bias, non-positive or out-of-order neighborhood
// bounds, and no usable termination condition.
func (c Config) Validate() error {
	if c.UnassignmentProb < 0 || c.UnassignmentProb > 1 {
		return ErrInvalidProbability
	}
	if c.AssignmentBias < 0 {
		return ErrInvalidBias
	}
	if c.MinNeighborhood < 1 || c.MaxNeighborhood < c.MinNeighborhood {
		return ErrInvalidNeighborhoodRange
	}
	if c.MaxIterations <= 0 && c.TimeLimit <= 0 {
		return ErrInvalidBudget
	}

	return nil
}
