package spagp

import (
	"context"

	"github.com/spagp-solver/spagp/gvns"
	"github.com/spagp-solver/spagp/instance"
	"github.com/spagp-solver/spagp/solution"
)

// Solve builds an initial solution for inst and runs GVNS to completion
// under cfg, returning the final assignment snapshot. It aliases
// gvns.Run directly rather than re-implementing any part of the driver.
func Solve(ctx context.Context, inst *instance.Instance, cfg gvns.Config) (solution.Snapshot, error) {
	return gvns.Run(ctx, inst, cfg)
}
