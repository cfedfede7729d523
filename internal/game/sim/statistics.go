// Package sim drives repeated spins and accumulates outcome frequencies.
package sim

import (
	"github.com/cory-johannsen/reelsim/internal/game/payout"
	"github.com/cory-johannsen/reelsim/internal/game/reel"
)

// MaxCount bounds a prize's run length: a run never exceeds the row width.
const MaxCount = reel.MaxColumns

// Statistics holds monotonically growing outcome counters for one simulation.
// Counters are plain sums, so partial statistics from independent batches merge
// exactly in any order.
type Statistics struct {
	// Spins is the number of trials evaluated.
	Spins uint64
	// WinningSpins is the number of trials with at least one prize.
	WinningSpins uint64
	// Prizes is the total number of prizes over all trials.
	Prizes uint64
	// Combos counts prizes by [count][symbol].
	Combos [MaxCount + 1][reel.SymbolCount]uint64
	// ByCount counts prizes by run length.
	ByCount [MaxCount + 1]uint64
	// BySymbol counts prizes by symbol.
	BySymbol [reel.SymbolCount]uint64
}

// Combination is one non-zero (count, symbol) cell of the combination table.
type Combination struct {
	Count       int
	Symbol      reel.Symbol
	Occurrences uint64
}

// CountTotal is the number of prizes with a given run length.
type CountTotal struct {
	Count       int
	Occurrences uint64
}

// SymbolTotal is the number of prizes won with a given symbol.
type SymbolTotal struct {
	Symbol      reel.Symbol
	Occurrences uint64
}

// Record accounts for one spin and its prize set.
//
// Precondition: every prize has MinRun <= Count <= MaxCount and a valid symbol.
func (s *Statistics) Record(prizes []payout.Prize) {
	s.Spins++
	if len(prizes) == 0 {
		return
	}
	s.WinningSpins++
	s.Prizes += uint64(len(prizes))
	for _, p := range prizes {
		s.Combos[p.Count][p.Symbol]++
		s.ByCount[p.Count]++
		s.BySymbol[p.Symbol]++
	}
}

// Merge adds other's counters into s element-wise.
func (s *Statistics) Merge(other *Statistics) {
	s.Spins += other.Spins
	s.WinningSpins += other.WinningSpins
	s.Prizes += other.Prizes
	for c := range s.Combos {
		for sym := range s.Combos[c] {
			s.Combos[c][sym] += other.Combos[c][sym]
		}
		s.ByCount[c] += other.ByCount[c]
	}
	for sym := range s.BySymbol {
		s.BySymbol[sym] += other.BySymbol[sym]
	}
}

// Combinations returns the non-zero combination cells ordered by count, then symbol.
func (s *Statistics) Combinations() []Combination {
	var out []Combination
	for c := range s.Combos {
		for sym, n := range s.Combos[c] {
			if n > 0 {
				out = append(out, Combination{Count: c, Symbol: reel.Symbol(sym), Occurrences: n})
			}
		}
	}
	return out
}

// Counts returns the non-zero run-length totals in ascending order.
func (s *Statistics) Counts() []CountTotal {
	var out []CountTotal
	for c, n := range s.ByCount {
		if n > 0 {
			out = append(out, CountTotal{Count: c, Occurrences: n})
		}
	}
	return out
}

// Symbols returns the non-zero symbol totals in ascending symbol order.
func (s *Statistics) Symbols() []SymbolTotal {
	var out []SymbolTotal
	for sym, n := range s.BySymbol {
		if n > 0 {
			out = append(out, SymbolTotal{Symbol: reel.Symbol(sym), Occurrences: n})
		}
	}
	return out
}
