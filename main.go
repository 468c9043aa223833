package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"war/config"
	"war/console"
	"war/engine"
	"war/game"
	"war/metrics"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("war", flag.ContinueOnError)
	fs.IntVar(&cfg.Territories, "territories", cfg.Territories, "Number of territories on the map")
	fs.BoolVar(&cfg.Manual, "manual", cfg.Manual, "Enter every territory by hand instead of using the built-in map")
	fs.BoolVar(&cfg.Missions, "missions", cfg.Missions, "Draw a secret mission for the player")
	fs.StringVar(&cfg.PlayerColor, "player", cfg.PlayerColor, "Army color controlled by the player")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.HistoryDir, "history-dir", cfg.HistoryDir, "Directory to export the battle log to")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	zerolog.SetGlobalLevel(level)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := game.NewSource(seed)

	con := console.New(os.Stdin, os.Stdout)
	con.RenderBanner()

	var registry *game.Registry
	if cfg.Manual {
		registry, err = game.InitializeManually(cfg.Territories, con)
	} else {
		registry, err = game.InitializeDefault(cfg.Territories)
	}
	if err != nil {
		con.RenderError(err)
		log.Error().Err(err).Msg("failed to set up the map")
		return 1
	}

	sessionID := uuid.New().String()
	collector := metrics.NewCollector()
	options := []engine.Option{
		engine.WithSessionID(sessionID),
		engine.WithCollector(collector),
	}
	if cfg.Missions {
		options = append(options, engine.WithMission(game.SelectRandomMission(rng), cfg.PlayerColor))
	}
	session := engine.NewSession(registry, rng, options...)
	log.Info().Str("session", sessionID).Uint64("seed", seed).Msg("starting session")

	result, err := session.Run(con)
	if err != nil {
		log.Error().Err(err).Msg("session aborted")
	}
	log.Info().Str("session", sessionID).Msgf("session finished: %s", result)

	if cfg.HistoryDir != "" {
		if err := exportHistory(cfg.HistoryDir, sessionID, collector); err != nil {
			log.Error().Err(err).Msg("failed to export battle log")
		}
	}
	return 0
}

func exportHistory(dir, sessionID string, collector metrics.Collector) error {
	writer, err := metrics.NewWriter(dir, sessionID)
	if err != nil {
		return err
	}
	if err := writer.WriteBattleRecords(collector.Battles()); err != nil {
		return err
	}
	if err := writer.WriteSessionMetric(collector.Complete()); err != nil {
		return err
	}
	log.Info().Msgf("stored battle log in %s", writer.Dir())
	return nil
}
