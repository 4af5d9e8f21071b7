package gvns

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spagp-solver/spagp/selfcheck"
	"github.com/spagp-solver/spagp/solution"
)

// Reporter is the strategy interface the driver calls into after every
// outer iteration (Observe) and after every internal step (CheckStep),
// per spec §4.8's three reporting modes. Implementations that don't need
// one of the two hooks leave it as a no-op (CheckStep returning false).
type Reporter interface {
	// Observe is called once per outer iteration, after the accept/revert
	// decision, and once more before the loop starts (iter=0, k=0) to
	// record the initial objective.
	Observe(iter, k int, accepted bool, objective int, elapsed time.Duration)

	// CheckStep is called after each internal step (structural, shake,
	// vnd) with a label identifying which. Returning true stops the run
	// immediately; production reporters always return false here so that
	// the hot path never pays for a self-check (spec §7).
	CheckStep(s *solution.State, iter, k int, step string) bool
}

// noopReporter is the default Reporter: it observes nothing and never
// checks. Used when Config.Reporter is left nil.
type noopReporter struct{}

func (noopReporter) Observe(int, int, bool, int, time.Duration) {}
func (noopReporter) CheckStep(*solution.State, int, int, string) bool {
	return false
}

// DemonstrationReporter prints one line per outer iteration to Writer
// (os.Stdout if nil). It never self-checks.
type DemonstrationReporter struct {
	Writer io.Writer
}

func (r *DemonstrationReporter) out() io.Writer {
	if r.Writer == nil {
		return os.Stdout
	}

	return r.Writer
}

func (r *DemonstrationReporter) Observe(iter, k int, accepted bool, objective int, elapsed time.Duration) {
	verdict := "reverted"
	if accepted {
		verdict = "accepted"
	}
	fmt.Fprintf(r.out(), "iter=%d k=%d %s objective=%d elapsed=%s\n", iter, k, verdict, objective, elapsed)
}

func (r *DemonstrationReporter) CheckStep(*solution.State, int, int, string) bool {
	return false
}

// LogEntry is one row of a BenchmarkReporter's Log: the objective,
// wall-clock time elapsed since the run started, and the neighborhood index
// active when this improvement was observed.
type LogEntry struct {
	Objective    int
	Runtime      time.Duration
	Neighborhood int
}

// BenchmarkReporter accumulates one LogEntry every time the best
// objective improves, including the initial observation at k=0 (spec
// §4.8). It never self-checks.
type BenchmarkReporter struct {
	Log []LogEntry

	started bool
	best    int
}

func (r *BenchmarkReporter) Observe(iter, k int, accepted bool, objective int, elapsed time.Duration) {
	if !r.started || objective > r.best {
		r.started = true
		r.best = objective
		r.Log = append(r.Log, LogEntry{Objective: objective, Runtime: elapsed, Neighborhood: k})
	}
}

func (r *BenchmarkReporter) CheckStep(*solution.State, int, int, string) bool {
	return false
}

// TestingReport is the structured failure record returned by a
// TestingReporter's first self-check violation (spec §6, "Testing
// report").
type TestingReport struct {
	Iteration    int
	Step         string
	Neighborhood int

	*selfcheck.Report
}

// TestingReporter runs selfcheck.Audit after every internal step and
// records the first violation found, stopping the run at that point. It
// never observes (demonstration/benchmark output is a separate concern).
type TestingReporter struct {
	Failure *TestingReport
}

func (r *TestingReporter) Observe(int, int, bool, int, time.Duration) {}

func (r *TestingReporter) CheckStep(s *solution.State, iter, k int, step string) bool {
	if r.Failure != nil {
		return true
	}

	report := selfcheck.Audit(s)
	if report == nil {
		return false
	}

	r.Failure = &TestingReport{Iteration: iter, Step: step, Neighborhood: k, Report: report}

	return true
}
