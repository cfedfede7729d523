package sim

import (
	"context"

	"github.com/cory-johannsen/reelsim/internal/game/payout"
	"github.com/cory-johannsen/reelsim/internal/game/reel"
)

// ProgressStride is how many spins run between context checks and progress reports.
// It is the finest progress granularity a run can observe.
const ProgressStride = 4096

// Spinner produces one spin's grid. *reel.Sampler and *reel.LoggedSampler satisfy it.
type Spinner interface {
	Sample() reel.Grid
}

// ResolveFunc reduces a grid to its prize set.
type ResolveFunc func(reel.Grid) []payout.Prize

// Aggregator runs sequential trials and owns the statistics they produce.
// It is not safe for concurrent use.
type Aggregator struct {
	spinner Spinner
	resolve ResolveFunc
}

// NewAggregator returns an Aggregator sampling from spinner and resolving with
// resolve. A nil resolve uses payout.Resolve.
//
// Precondition: spinner must be non-nil.
func NewAggregator(spinner Spinner, resolve ResolveFunc) *Aggregator {
	if spinner == nil {
		panic("sim: NewAggregator precondition violated: spinner must be non-nil")
	}
	if resolve == nil {
		resolve = payout.Resolve
	}
	return &Aggregator{spinner: spinner, resolve: resolve}
}

// Run evaluates trials spins and returns their statistics.
//
// Postcondition: result.Spins == trials; trials == 0 yields all-zero statistics.
func (a *Aggregator) Run(trials uint64) *Statistics {
	stats, _ := a.RunContext(context.Background(), trials, nil)
	return stats
}

// RunContext is Run with cancellation and progress reporting. ctx is checked and
// onProgress (if non-nil) called with the number of newly completed spins every
// ProgressStride spins and once at the end.
//
// Postcondition: on cancellation the statistics cover the spins completed so far
// and the error is ctx.Err().
func (a *Aggregator) RunContext(ctx context.Context, trials uint64, onProgress func(uint64)) (*Statistics, error) {
	stats := &Statistics{}
	var sinceReport uint64
	for i := uint64(0); i < trials; i++ {
		stats.Record(a.resolve(a.spinner.Sample()))

		sinceReport++
		if sinceReport == ProgressStride {
			if onProgress != nil {
				onProgress(sinceReport)
			}
			sinceReport = 0
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
	}
	if sinceReport > 0 && onProgress != nil {
		onProgress(sinceReport)
	}
	return stats, nil
}
