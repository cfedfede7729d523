package reel

import "fmt"

const (
	// WindowHeight is the number of visible rows.
	WindowHeight = 3
	// MaxColumns bounds the number of reels in a set. A run never exceeds the row
	// width, so this also bounds prize counts and sizes the counter tables in sim.
	MaxColumns = 16
)

// ReelStrip is a circular sequence of symbols for one column.
type ReelStrip []Symbol

// ConfigurationError reports a reel set that cannot be used for a simulation.
// Column is -1 when the problem is not tied to a single column.
type ConfigurationError struct {
	Column int
	Length int
	Height int
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return "reel configuration: " + e.Reason
	}
	return fmt.Sprintf("reel %d is too short (length %d), needs at least %d symbols",
		e.Column, e.Length, e.Height)
}

// ReelSet is an immutable, validated set of reel strips.
//
// Invariant: every strip has length >= Height().
type ReelSet struct {
	strips []ReelStrip
	height int
}

// NewReelSet validates strips against the window height and returns a ReelSet
// holding private copies of them.
//
// Postcondition: Returns a valid *ReelSet or a *ConfigurationError naming the
// first offending column.
func NewReelSet(strips []ReelStrip, height int) (*ReelSet, error) {
	if height < 1 {
		return nil, &ConfigurationError{Column: -1, Height: height,
			Reason: fmt.Sprintf("window height must be >= 1, got %d", height)}
	}
	if len(strips) == 0 {
		return nil, &ConfigurationError{Column: -1, Height: height, Reason: "no reels configured"}
	}
	if len(strips) > MaxColumns {
		return nil, &ConfigurationError{Column: -1, Height: height,
			Reason: fmt.Sprintf("at most %d reels supported, got %d", MaxColumns, len(strips))}
	}

	owned := make([]ReelStrip, len(strips))
	for i, s := range strips {
		if len(s) < height {
			return nil, &ConfigurationError{Column: i, Length: len(s), Height: height}
		}
		owned[i] = append(ReelStrip(nil), s...)
	}
	return &ReelSet{strips: owned, height: height}, nil
}

// Columns returns the number of reels.
func (rs *ReelSet) Columns() int { return len(rs.strips) }

// Height returns the number of visible rows.
func (rs *ReelSet) Height() int { return rs.height }

// StripLen returns the length of column c's strip.
//
// Precondition: 0 <= c < Columns().
func (rs *ReelSet) StripLen(c int) int { return len(rs.strips[c]) }

// SymbolAt returns the symbol at the given offset on column c, wrapping circularly.
// Negative offsets wrap from the end.
//
// Precondition: 0 <= c < Columns().
func (rs *ReelSet) SymbolAt(c, offset int) Symbol {
	s := rs.strips[c]
	i := offset % len(s)
	if i < 0 {
		i += len(s)
	}
	return s[i]
}
