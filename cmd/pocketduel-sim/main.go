package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pocketduel/pocketduel/internal/config"
	"github.com/pocketduel/pocketduel/internal/game"
	"github.com/pocketduel/pocketduel/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	games := flag.Int("games", 0, "override number of games")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *games > 0 {
		cfg.Games = *games
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := sim.Options{
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
		Policy1:  cfg.Policy1,
		Policy2:  cfg.Policy2,
		Logger:   logger,
	}
	if cfg.DeckFile != "" {
		if opts.Deck1, err = game.DeckByName(cfg.DeckFile, cfg.Deck1); err != nil {
			logger.Fatal("load deck", zap.Error(err))
		}
		if opts.Deck2, err = game.DeckByName(cfg.DeckFile, cfg.Deck2); err != nil {
			logger.Fatal("load deck", zap.Error(err))
		}
	}

	logger.Info("starting simulation batch",
		zap.Int("games", opts.Games),
		zap.String("policy1", cfg.Policy1),
		zap.String("policy2", cfg.Policy2),
	)

	report := sim.NewRunner(opts).Run()
	fmt.Print(report.String())
}

func initLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
