// Package config provides Viper-based configuration loading for the simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/reelsim/internal/game/sim"
)

// SimulationConfig holds trial and batching settings.
type SimulationConfig struct {
	// Trials is the number of spins to evaluate.
	Trials uint64 `mapstructure:"trials"`
	// Workers is the number of concurrent batches; 0 uses GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// Seed is the base generator seed; 0 draws a random seed.
	Seed uint64 `mapstructure:"seed"`
	// ReelsFile is a reel set YAML file; empty uses the built-in strips.
	ReelsFile string `mapstructure:"reels_file"`
	// ProgressEvery logs progress every N spins; 0 disables progress logging.
	// Non-zero values must be at least sim.ProgressStride.
	ProgressEvery uint64 `mapstructure:"progress_every"`
	// TraceSpins logs every spin at debug level.
	TraceSpins bool `mapstructure:"trace_spins"`
	// CryptoSource draws stops from crypto/rand; runs are then not reproducible.
	CryptoSource bool `mapstructure:"crypto_source"`
}

// ReportConfig holds result output settings.
type ReportConfig struct {
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Trials == 0 {
		errs = append(errs, "simulation.trials must be >= 1")
	}
	if s.Workers < 0 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 0, got %d", s.Workers))
	}
	if s.ProgressEvery != 0 && s.ProgressEvery < sim.ProgressStride {
		errs = append(errs, fmt.Sprintf("simulation.progress_every must be 0 or >= %d, got %d", sim.ProgressStride, s.ProgressEvery))
	}
	if s.CryptoSource && s.Seed != 0 {
		errs = append(errs, "simulation.seed cannot be set together with simulation.crypto_source")
	}
	if s.TraceSpins && s.Trials > 1_000_000 {
		errs = append(errs, "simulation.trace_spins is limited to runs of at most 1000000 trials")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateReport(r ReportConfig) error {
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[r.Format] {
		return fmt.Errorf("report.format must be one of [text, json], got %q", r.Format)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// New returns a Viper instance with defaults and SLOTSIM_ environment overrides
// applied. When path is non-empty it is read as the configuration file.
//
// Postcondition: Returns a configured *viper.Viper or a non-nil error.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("SLOTSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.trials", 1_000_000)
	v.SetDefault("simulation.workers", 0)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.reels_file", "")
	v.SetDefault("simulation.progress_every", 1_000_000)
	v.SetDefault("simulation.trace_spins", false)
	v.SetDefault("simulation.crypto_source", false)

	v.SetDefault("report.format", "text")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
