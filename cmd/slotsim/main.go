// Package main provides the slot simulator binary that spins a reel set many
// times and reports prize frequencies.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/cory-johannsen/reelsim/internal/config"
	"github.com/cory-johannsen/reelsim/internal/game/reel"
	"github.com/cory-johannsen/reelsim/internal/game/sim"
	"github.com/cory-johannsen/reelsim/internal/observability"
	"github.com/cory-johannsen/reelsim/internal/report"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults only")
	trials := flag.Uint64("trials", 0, "number of spins (overrides simulation.trials)")
	seed := flag.Uint64("seed", 0, "base generator seed (overrides simulation.seed)")
	workers := flag.Int("workers", 0, "concurrent batches (overrides simulation.workers)")
	reelsFile := flag.String("reels", "", "reel set YAML file (overrides simulation.reels_file)")
	format := flag.String("format", "", "report format: text or json (overrides report.format)")
	crypto := flag.Bool("crypto", false, "draw stops from crypto/rand; not reproducible (overrides simulation.crypto_source)")
	flag.Parse()

	v, err := config.New(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			v.Set("simulation.trials", *trials)
		case "seed":
			v.Set("simulation.seed", *seed)
		case "workers":
			v.Set("simulation.workers", *workers)
		case "reels":
			v.Set("simulation.reels_file", *reelsFile)
		case "format":
			v.Set("report.format", *format)
		case "crypto":
			v.Set("simulation.crypto_source", *crypto)
		}
	})
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	baseLogger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer baseLogger.Sync()

	runID := observability.NewRunID()
	logger := observability.WithRun(baseLogger, runID)

	set, err := loadReels(cfg.Simulation.ReelsFile)
	if err != nil {
		var cfgErr *reel.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Fatal("invalid reel configuration",
				zap.Int("column", cfgErr.Column),
				zap.Int("length", cfgErr.Length),
				zap.Error(err),
			)
		}
		logger.Fatal("loading reels", zap.Error(err))
	}
	logger.Info("reels loaded",
		zap.String("source", reelSource(cfg.Simulation.ReelsFile)),
		zap.Int("columns", set.Columns()),
		zap.Int("height", set.Height()),
		zap.Duration("elapsed", time.Since(start)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(set, sim.RunnerConfig{
		Workers:       cfg.Simulation.Workers,
		Seed:          cfg.Simulation.Seed,
		ProgressEvery: cfg.Simulation.ProgressEvery,
		TraceSpins:    cfg.Simulation.TraceSpins,
		CryptoSource:  cfg.Simulation.CryptoSource,
	}, logger)

	result, runErr := runner.Run(ctx, cfg.Simulation.Trials)

	if err := report.Write(os.Stdout, report.Build(result, runID.String()), cfg.Report.Format); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("simulation did not complete; report covers partial results", zap.Error(runErr))
		baseLogger.Sync()
		os.Exit(1)
	}
}

func loadReels(path string) (*reel.ReelSet, error) {
	if path == "" {
		return reel.DefaultReelSet()
	}
	return reel.LoadReelSetFromFile(path)
}

func reelSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
