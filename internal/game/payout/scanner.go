// Package payout detects winning symbol runs in a spin's grid and reduces them
// to the spin's prize set.
package payout

import "github.com/cory-johannsen/reelsim/internal/game/reel"

// MinRun is the shortest run that pays.
const MinRun = 3

// SequenceResult maps a symbol to its best qualifying run length within one row.
// Symbols without a run of at least MinRun are absent.
type SequenceResult map[reel.Symbol]int

// record keeps the longer of the existing and the new run for sym.
func (r SequenceResult) record(sym reel.Symbol, count int) {
	if prev, ok := r[sym]; !ok || count > prev {
		r[sym] = count
	}
}

// rowScan is the automaton state for one left-to-right pass.
type rowScan struct {
	result  SequenceResult
	current reel.Symbol
	active  bool // current holds a symbol
	count   int
	pending int // wilds seen since the last run was opened
}

// close records the active run if it qualifies.
func (s *rowScan) close() {
	if s.active && s.count >= MinRun {
		s.result.record(s.current, s.count)
	}
}

func (s *rowScan) step(sym reel.Symbol) {
	switch {
	case sym.IsWild():
		// Wilds extend a non-premium run in place and are transparent to premium
		// runs. pending is not cleared here: a later run opening credits them again.
		s.pending++
		if s.active && !s.current.IsPremium() {
			s.count++
		}
	case sym.IsPremium():
		if s.active && s.current == sym {
			s.count++
			return
		}
		s.close()
		s.current, s.active = sym, true
		s.count = 1
		s.pending = 0
	default:
		if s.active && s.current == sym {
			s.count++
			return
		}
		s.close()
		s.current, s.active = sym, true
		s.count = 1 + s.pending
		s.pending = 0
	}
}

// ScanRow runs the winning-sequence automaton over one row and returns the best
// run per symbol.
//
// Wilds substitute for any non-premium symbol: leading or pending wilds are
// credited to the next plain run opened, and wilds inside a plain run extend it.
// Premium runs take no wilds and are neither extended nor broken by them.
//
// Postcondition: every value in the result is >= MinRun.
func ScanRow(row []reel.Symbol) SequenceResult {
	s := rowScan{result: make(SequenceResult)}
	for _, sym := range row {
		s.step(sym)
	}
	s.close()
	return s.result
}
