package sim

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/reelsim/internal/game/payout"
	"github.com/cory-johannsen/reelsim/internal/game/reel"
	"github.com/cory-johannsen/reelsim/internal/game/rng"
)

// RunnerConfig controls how a simulation is split into batches.
type RunnerConfig struct {
	// Workers is the number of concurrent batches; 0 uses GOMAXPROCS.
	Workers int
	// Seed is the base seed for every batch's generator; 0 draws a random seed.
	Seed uint64
	// ProgressEvery logs progress each time this many spins complete; 0 disables it.
	// Progress is observed every ProgressStride spins per batch, so smaller values
	// log at most once per ProgressStride spins.
	ProgressEvery uint64
	// TraceSpins logs every spin at debug level.
	TraceSpins bool
	// CryptoSource draws every batch's stops from crypto/rand. Such runs are not
	// reproducible and Seed is ignored.
	CryptoSource bool
}

// Result is the merged outcome of a simulation.
type Result struct {
	Stats   *Statistics
	Seed    uint64
	Workers int
	Elapsed time.Duration
}

// Runner splits a simulation into independent batches, each with its own
// generator and partial statistics, and merges them when all batches finish.
type Runner struct {
	set    *reel.ReelSet
	cfg    RunnerConfig
	logger *zap.Logger
}

// NewRunner creates a Runner over set.
//
// Precondition: set and logger must be non-nil.
func NewRunner(set *reel.ReelSet, cfg RunnerConfig, logger *zap.Logger) *Runner {
	if set == nil || logger == nil {
		panic("sim: NewRunner precondition violated: set and logger must be non-nil")
	}
	return &Runner{set: set, cfg: cfg, logger: logger}
}

// batchSizes splits trials over workers, spreading the remainder over the first batches.
func batchSizes(trials uint64, workers int) []uint64 {
	if uint64(workers) > trials {
		workers = int(trials)
	}
	if workers < 1 {
		workers = 1
	}
	sizes := make([]uint64, workers)
	chunk, rem := trials/uint64(workers), trials%uint64(workers)
	for i := range sizes {
		sizes[i] = chunk
		if uint64(i) < rem {
			sizes[i]++
		}
	}
	return sizes
}

// batchSource returns the source for one batch under the runner's configuration.
func (r *Runner) batchSource(seed uint64, batch int) rng.Source {
	if r.cfg.CryptoSource {
		return rng.NewCryptoSource()
	}
	return newBatchSource(seed, batch)
}

// newBatchSource returns the seeded generator owned by one batch.
func newBatchSource(seed uint64, batch int) rng.Source {
	return rng.NewSeededSource(rng.SplitSeed(seed, batch))
}

// Run evaluates trials spins across the configured workers. The same seed and
// worker count always produce the same statistics.
//
// Postcondition: on success result.Stats.Spins == trials. On cancellation the
// partial statistics are returned together with the context error.
func (r *Runner) Run(ctx context.Context, trials uint64) (*Result, error) {
	start := time.Now()

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := r.cfg.Seed
	if r.cfg.CryptoSource {
		seed = 0
	} else if seed == 0 {
		seed = rng.RandomSeed()
	}
	sizes := batchSizes(trials, workers)

	r.logger.Info("simulation starting",
		zap.Uint64("trials", trials),
		zap.Int("batches", len(sizes)),
		zap.Uint64("seed", seed),
		zap.Bool("crypto_source", r.cfg.CryptoSource),
		zap.Int("reels", r.set.Columns()),
	)

	var done atomic.Uint64
	progress := func(delta uint64) {
		now := done.Add(delta)
		every := r.cfg.ProgressEvery
		if every == 0 || (now-delta)/every == now/every {
			return
		}
		r.logger.Info("simulation progress",
			zap.Uint64("spins", now),
			zap.Uint64("trials", trials),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	partials := make([]*Statistics, len(sizes))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range sizes {
		g.Go(func() error {
			sampler := reel.NewSampler(r.set, r.batchSource(seed, i))
			var spinner Spinner = sampler
			if r.cfg.TraceSpins {
				spinner = reel.NewLoggedSampler(sampler, r.logger.With(zap.Int("batch", i)))
			}
			stats, err := NewAggregator(spinner, payout.Resolve).RunContext(gctx, n, progress)
			partials[i] = stats
			return err
		})
	}
	err := g.Wait()

	total := &Statistics{}
	for _, p := range partials {
		if p != nil {
			total.Merge(p)
		}
	}
	result := &Result{Stats: total, Seed: seed, Workers: len(sizes), Elapsed: time.Since(start)}

	if err != nil {
		r.logger.Warn("simulation interrupted",
			zap.Uint64("spins", total.Spins),
			zap.Uint64("trials", trials),
			zap.Error(err),
		)
		return result, err
	}
	r.logger.Info("simulation complete",
		zap.Uint64("spins", total.Spins),
		zap.Uint64("prizes", total.Prizes),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
