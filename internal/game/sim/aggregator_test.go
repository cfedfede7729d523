package sim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/reelsim/internal/game/payout"
	"github.com/cory-johannsen/reelsim/internal/game/reel"
	"github.com/cory-johannsen/reelsim/internal/game/rng"
	"github.com/cory-johannsen/reelsim/internal/game/sim"
)

// cycleSpinner replays a fixed list of grids.
type cycleSpinner struct {
	grids []reel.Grid
	i     int
}

func (c *cycleSpinner) Sample() reel.Grid {
	g := c.grids[c.i%len(c.grids)]
	c.i++
	return g
}

func g(rows ...[]reel.Symbol) reel.Grid { return reel.Grid(rows) }

func r(ids ...int) []reel.Symbol {
	out := make([]reel.Symbol, len(ids))
	for i, id := range ids {
		out[i] = reel.Symbol(id)
	}
	return out
}

func TestAggregator_ZeroTrials(t *testing.T) {
	agg := sim.NewAggregator(&cycleSpinner{grids: []reel.Grid{g(r(1, 1, 1))}}, nil)
	assert.Equal(t, &sim.Statistics{}, agg.Run(0))
}

func TestAggregator_CountsPerSpin(t *testing.T) {
	spinner := &cycleSpinner{grids: []reel.Grid{
		g(r(1, 1, 1, 2, 3), r(1, 1, 1, 1, 3), r(13, 13, 13, 4, 5)), // 1x4, 13x3
		g(r(1, 2, 3, 4, 5), r(5, 4, 3, 2, 1), r(0, 0, 0, 0, 0)),    // nothing
		g(r(0, 0, 7, 7, 7), r(1, 2, 3, 4, 5), r(6, 5, 4, 3, 2)),    // 7x5
	}}
	stats := sim.NewAggregator(spinner, payout.Resolve).Run(3)

	assert.Equal(t, uint64(3), stats.Spins)
	assert.Equal(t, uint64(2), stats.WinningSpins)
	assert.Equal(t, uint64(3), stats.Prizes)
	assert.Equal(t, uint64(1), stats.Combos[4][1])
	assert.Equal(t, uint64(1), stats.Combos[3][13])
	assert.Equal(t, uint64(1), stats.Combos[5][7])
	assert.Equal(t, uint64(1), stats.ByCount[3])
	assert.Equal(t, uint64(1), stats.ByCount[4])
	assert.Equal(t, uint64(1), stats.ByCount[5])
	assert.Equal(t, uint64(1), stats.BySymbol[7])
}

func TestAggregator_CustomResolver(t *testing.T) {
	calls := 0
	resolve := func(reel.Grid) []payout.Prize {
		calls++
		return []payout.Prize{{Symbol: 2, Count: 3}}
	}
	stats := sim.NewAggregator(&cycleSpinner{grids: []reel.Grid{g(r(1))}}, resolve).Run(10)
	assert.Equal(t, 10, calls)
	assert.Equal(t, uint64(10), stats.Combos[3][2])
}

func TestAggregator_NilSpinnerPanics(t *testing.T) {
	assert.Panics(t, func() { sim.NewAggregator(nil, nil) })
}

// Two consecutive batches on one generator merge to exactly the statistics of a
// single batch of twice the size on an identically seeded generator.
func TestAggregator_BatchesMergeExactly(t *testing.T) {
	set, err := reel.DefaultReelSet()
	require.NoError(t, err)
	const k = 5000

	split := sim.NewAggregator(reel.NewSampler(set, rng.NewSeededSource(77)), nil)
	merged := split.Run(k)
	merged.Merge(split.Run(k))

	whole := sim.NewAggregator(reel.NewSampler(set, rng.NewSeededSource(77)), nil).Run(2 * k)
	assert.Equal(t, whole, merged)
}

func TestAggregator_RunContextReportsProgress(t *testing.T) {
	agg := sim.NewAggregator(&cycleSpinner{grids: []reel.Grid{g(r(1, 2, 3))}}, nil)
	var reported uint64
	stats, err := agg.RunContext(context.Background(), 10_000, func(d uint64) { reported += d })
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), reported)
	assert.Equal(t, uint64(10_000), stats.Spins)
}

func TestAggregator_RunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := sim.NewAggregator(&cycleSpinner{grids: []reel.Grid{g(r(1, 2, 3))}}, nil)
	stats, err := agg.RunContext(ctx, 1_000_000, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, stats.Spins, uint64(1_000_000))
}
