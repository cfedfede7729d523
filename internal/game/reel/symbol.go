// Package reel models reel strips, reel sets, and the visible symbol grid
// produced by a spin.
package reel

import "strconv"

// Symbol identifies a reel symbol. Valid symbols are in [0, SymbolCount).
type Symbol uint8

const (
	// SymbolCount is the number of distinct symbols.
	SymbolCount = 14
	// Wild substitutes for any non-premium symbol.
	Wild Symbol = 0
)

// Premium symbols only pay as pure, uninterrupted runs of themselves.
const (
	PremiumLow  Symbol = 12
	PremiumHigh Symbol = 13
)

// Valid reports whether s is in [0, SymbolCount).
func (s Symbol) Valid() bool {
	return s < SymbolCount
}

// IsWild reports whether s is the wild symbol.
func (s Symbol) IsWild() bool {
	return s == Wild
}

// IsPremium reports whether s requires a pure sequence.
func (s Symbol) IsPremium() bool {
	return s == PremiumLow || s == PremiumHigh
}

// String returns "WILD" for the wild symbol and the decimal id otherwise.
func (s Symbol) String() string {
	if s.IsWild() {
		return "WILD"
	}
	return strconv.Itoa(int(s))
}
