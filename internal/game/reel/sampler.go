package reel

import (
	"strings"

	"github.com/cory-johannsen/reelsim/internal/game/rng"
)

// Grid is the visible window of a spin, indexed [row][column].
type Grid [][]Symbol

// Row returns row r of the grid.
func (g Grid) Row(r int) []Symbol { return g[r] }

// String renders the grid one row per line, symbols separated by spaces.
func (g Grid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, s := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// Sampler draws stop positions and materializes grids from a ReelSet.
// It owns its Source; a Sampler is safe for concurrent use only if its Source is.
type Sampler struct {
	set *ReelSet
	src rng.Source
}

// NewSampler returns a Sampler drawing from set with src.
//
// Precondition: set and src must be non-nil.
func NewSampler(set *ReelSet, src rng.Source) *Sampler {
	if set == nil || src == nil {
		panic("reel: NewSampler precondition violated: set and src must be non-nil")
	}
	return &Sampler{set: set, src: src}
}

// SampleStops draws one stop position per column, uniform over [0, StripLen(c)).
func (s *Sampler) SampleStops() []int {
	stops := make([]int, s.set.Columns())
	for c := range stops {
		stops[c] = s.src.Intn(s.set.StripLen(c))
	}
	return stops
}

// GridAt materializes the window for the given stops without consuming randomness.
//
// Precondition: len(stops) equals the reel set's Columns().
func (s *Sampler) GridAt(stops []int) Grid {
	grid := make(Grid, s.set.Height())
	for r := range grid {
		row := make([]Symbol, len(stops))
		for c, stop := range stops {
			row[c] = s.set.SymbolAt(c, stop+r)
		}
		grid[r] = row
	}
	return grid
}

// SampleWithStops draws a spin and returns both its stops and its grid.
func (s *Sampler) SampleWithStops() ([]int, Grid) {
	stops := s.SampleStops()
	return stops, s.GridAt(stops)
}

// Sample draws one spin and returns its grid.
func (s *Sampler) Sample() Grid {
	return s.GridAt(s.SampleStops())
}
