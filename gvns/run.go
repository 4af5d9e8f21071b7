package gvns

import (
	"context"
	"time"

	"github.com/spagp-solver/spagp/instance"
	"github.com/spagp-solver/spagp/shake"
	"github.com/spagp-solver/spagp/solution"
	"github.com/spagp-solver/spagp/structural"
	"github.com/spagp-solver/spagp/vnd"
)

// Run builds an initial solution for inst and drives the GVNS loop (spec
// §4.8) until the configured iteration or wall-time budget is exhausted, ctx
// is cancelled, or (in testing mode) the first self-check violation is
// found. It returns the final solution snapshot.
func Run(ctx context.Context, inst *instance.Instance, cfg Config) (solution.Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return solution.Snapshot{}, err
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = noopReporter{}
	}

	rng := shake.NewRNG(cfg.Seed)
	s := solution.InitialSolution(inst, cfg.RewardBilateral, cfg.PenaltyUnassigned)

	start := time.Now()
	reporter.Observe(0, 0, true, s.CachedObjective(), 0)
	if reporter.CheckStep(s, 0, 0, "initial") {
		return s.Snapshot(), nil
	}

	k := cfg.MinNeighborhood

	for iter := 1; ; iter++ {
		if cfg.MaxIterations > 0 && iter > cfg.MaxIterations {
			return s.Snapshot(), nil
		}
		elapsed := time.Since(start)
		if cfg.TimeLimit > 0 && elapsed >= cfg.TimeLimit {
			return s.Snapshot(), nil
		}
		select {
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		default:
		}

		kUsed := k
		sched := scheduleEntry(kUsed)

		if sched.structural {
			structural.Run(s, rng)
			if reporter.CheckStep(s, iter, kUsed, "structural") {
				return s.Snapshot(), nil
			}
		}
		if sched.shake {
			shakeCfg := shake.Config{
				N:                sched.n,
				AcrossProjects:   sched.acrossProjects,
				AssignmentBias:   cfg.AssignmentBias,
				UnassignmentProb: cfg.UnassignmentProb,
			}
			if _, err := shake.Run(s, shakeCfg, rng); err != nil {
				return s.Snapshot(), err
			}
			if reporter.CheckStep(s, iter, kUsed, "shake") {
				return s.Snapshot(), nil
			}
		}

		vnd.Run(s, vnd.Config{MaxToMove: sched.n, AcrossProjects: sched.acrossProjects})
		if reporter.CheckStep(s, iter, kUsed, "vnd") {
			return s.Snapshot(), nil
		}

		accepted := s.CachedObjective() > s.BestObjective()
		if accepted {
			s.AdoptBest()
			k = cfg.MinNeighborhood
		} else {
			s.Revert()
			s.RestoreCachedToBest()
			if k >= cfg.MaxNeighborhood {
				k = cfg.MinNeighborhood
			} else {
				k++
			}
		}

		s.ClearLog()
		s.PruneEmptyGroups()

		reporter.Observe(iter, kUsed, accepted, s.CachedObjective(), time.Since(start))
	}
}
