package reel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlReelSet is the YAML representation of a reel set file.
type yamlReelSet struct {
	Name         string  `yaml:"name"`
	WindowHeight int     `yaml:"window_height"`
	Reels        [][]int `yaml:"reels"`
}

// LoadReelSetFromFile reads and validates a reel set YAML file.
//
// Postcondition: Returns a validated ReelSet or a non-nil error.
func LoadReelSetFromFile(path string) (*ReelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reels file %s: %w", path, err)
	}
	rs, err := LoadReelSetFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading reels file %s: %w", path, err)
	}
	return rs, nil
}

// LoadReelSetFromBytes parses a reel set from YAML bytes. window_height defaults
// to WindowHeight when omitted.
//
// Postcondition: Returns a validated ReelSet or a non-nil error; length violations
// are reported as *ConfigurationError.
func LoadReelSetFromBytes(data []byte) (*ReelSet, error) {
	var file yamlReelSet
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing reels YAML: %w", err)
	}

	height := file.WindowHeight
	if height == 0 {
		height = WindowHeight
	}

	strips := make([]ReelStrip, len(file.Reels))
	for c, reel := range file.Reels {
		strip := make(ReelStrip, len(reel))
		for i, id := range reel {
			if id < 0 || id >= SymbolCount {
				return nil, fmt.Errorf("reel %d position %d: symbol %d out of range [0, %d)", c, i, id, SymbolCount)
			}
			strip[i] = Symbol(id)
		}
		strips[c] = strip
	}
	return NewReelSet(strips, height)
}
