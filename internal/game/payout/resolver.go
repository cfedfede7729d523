package payout

import (
	"sort"

	"github.com/cory-johannsen/reelsim/internal/game/reel"
)

// Prize is a reportable win: a symbol and its run length.
type Prize struct {
	Symbol reel.Symbol
	Count  int
}

// Resolve scans every row of grid and reduces the row results to the spin's prize
// set. Each symbol keeps only its longest run across the whole grid, so a spin
// never reports the same symbol twice even when several rows qualify.
//
// Postcondition: prizes are sorted by symbol, unique per symbol, each Count >= MinRun.
func Resolve(grid reel.Grid) []Prize {
	best := make(SequenceResult)
	for _, row := range grid {
		for sym, count := range ScanRow(row) {
			best.record(sym, count)
		}
	}
	if len(best) == 0 {
		return nil
	}

	prizes := make([]Prize, 0, len(best))
	for sym, count := range best {
		prizes = append(prizes, Prize{Symbol: sym, Count: count})
	}
	sort.Slice(prizes, func(i, j int) bool { return prizes[i].Symbol < prizes[j].Symbol })
	return prizes
}
