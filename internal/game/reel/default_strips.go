package reel

// defaultStrips is the built-in five-reel base game layout.
var defaultStrips = [][]Symbol{
	{
		6, 6, 3, 11, 11, 11, 8, 5, 8, 9, 7, 8, 10, 8, 11, 8, 8, 7, 6, 13, 13, 11, 6, 3, 11,
		10, 10, 7, 8, 9, 3, 12, 7, 11, 12, 6, 8, 9, 7, 7, 11, 10, 9, 13, 11, 13, 3, 13, 9, 9,
		8, 10, 6, 5, 8, 10, 11, 6, 3, 11, 5, 7, 8, 11, 9, 10, 7, 5, 11, 11, 6, 10, 6, 9, 9,
		11, 1, 8, 5, 11, 11, 7, 4, 9, 1, 9, 1, 12, 11, 10, 9, 4, 6, 5, 10, 1, 7, 13, 13, 9,
		2, 13, 3, 1, 2, 4, 11, 6, 7, 6, 2, 4, 4, 2, 11, 3, 5, 8, 11, 5, 6, 6, 3,
	},
	{
		10, 6, 8, 0, 11, 5, 0, 11, 5, 11, 3, 5, 1, 5, 10, 1, 10, 7, 10, 13, 13, 9, 10, 10, 7,
		5, 4, 4, 5, 1, 5, 12, 9, 9, 12, 7, 11, 9, 5, 9, 9, 6, 7, 13, 11, 13, 4, 13, 10, 7,
		7, 0, 9, 11, 11, 11, 9, 10, 10, 12, 7, 9, 6, 6, 5, 7, 8, 0, 11, 6, 3, 9, 0, 5, 8,
		6, 7, 5, 9, 8, 6, 7, 11, 0, 7, 9, 7, 12, 5, 3, 8, 7, 0, 9, 9, 6, 11, 13, 13, 4,
		11, 13, 8, 2, 5, 1, 3, 10, 0, 11, 1, 6, 3, 8, 11, 9, 0, 1, 9, 2, 10, 6, 8,
	},
	{
		9, 5, 4, 0, 9, 8, 0, 11, 11, 7, 4, 5, 1, 10, 10, 1, 10, 4, 10, 13, 13, 6, 4, 3, 9,
		9, 4, 8, 10, 1, 5, 12, 6, 4, 12, 7, 9, 9, 11, 10, 6, 7, 7, 13, 4, 13, 6, 13, 8, 7,
		6, 0, 11, 8, 7, 4, 6, 4, 3, 12, 7, 6, 11, 11, 9, 3, 9, 0, 5, 8, 10, 10, 0, 2, 2,
		8, 5, 7, 6, 8, 7, 4, 6, 0, 5, 2, 11, 12, 3, 11, 2, 2, 0, 10, 3, 7, 13, 6, 13, 7,
		8, 13, 5, 1, 8, 3, 6, 6, 0, 6, 6, 12, 3, 5, 7, 8, 1, 9, 8, 1, 9, 5, 4,
	},
	{
		6, 4, 6, 0, 4, 11, 5, 10, 7, 8, 5, 4, 1, 8, 10, 1, 11, 6, 7, 13, 13, 11, 10, 7, 4,
		5, 7, 6, 9, 1, 1, 12, 6, 3, 12, 3, 8, 4, 3, 9, 11, 11, 3, 13, 4, 13, 6, 13, 7, 7,
		11, 1, 10, 8, 8, 4, 11, 10, 7, 12, 11, 8, 9, 9, 6, 4, 10, 1, 8, 5, 6, 3, 0, 6, 5,
		10, 11, 5, 6, 10, 3, 3, 2, 0, 11, 4, 8, 12, 3, 1, 5, 6, 0, 4, 4, 8, 4, 13, 13, 5,
		5, 13, 2, 7, 8, 7, 5, 7, 0, 4, 10, 12, 3, 10, 7, 6, 1, 7, 7, 10, 6, 4, 6,
	},
	{
		3, 9, 3, 10, 2, 3, 7, 3, 6, 12, 11, 7, 5, 8, 11, 3, 3, 10, 10, 13, 13, 10, 8, 11, 4,
		9, 8, 2, 3, 9, 8, 12, 6, 5, 12, 8, 11, 6, 4, 8, 10, 4, 6, 13, 4, 13, 9, 13, 11, 9,
		3, 8, 5, 2, 9, 3, 10, 8, 11, 12, 7, 11, 4, 7, 1, 11, 8, 5, 5, 9, 11, 10, 11, 9, 4,
		10, 2, 1, 1, 3, 7, 10, 1, 5, 2, 11, 2, 12, 2, 5, 4, 10, 6, 8, 6, 2, 2, 13, 13, 7,
		6, 13, 2, 12, 10, 4, 10, 7, 6, 10, 7, 12, 1, 5, 1, 1, 8, 3, 9, 11, 3, 9, 3,
	},
}

// DefaultStrips returns a copy of the built-in reel strips.
func DefaultStrips() []ReelStrip {
	strips := make([]ReelStrip, len(defaultStrips))
	for i, s := range defaultStrips {
		strips[i] = append(ReelStrip(nil), s...)
	}
	return strips
}

// DefaultReelSet builds a ReelSet from the built-in strips.
func DefaultReelSet() (*ReelSet, error) {
	return NewReelSet(DefaultStrips(), WindowHeight)
}
