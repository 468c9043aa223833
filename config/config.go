// Package config loads session settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"war/game"
)

// Config holds the settings of one game session.
type Config struct {
	Territories int    `env:"WAR_TERRITORIES" envDefault:"5"`
	Manual      bool   `env:"WAR_MANUAL" envDefault:"false"`
	Missions    bool   `env:"WAR_MISSIONS" envDefault:"true"`
	PlayerColor string `env:"WAR_PLAYER_COLOR" envDefault:"Azul"`
	Seed        uint64 `env:"WAR_SEED"`                         // 0 seeds from the wall clock
	LogLevel    string `env:"WAR_LOG_LEVEL" envDefault:"warn"`
	HistoryDir  string `env:"WAR_HISTORY_DIR"`                  // empty disables the battle log export
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", game.ErrConfiguration, err)
	}
	return cfg, nil
}

// Validate checks the settings before the registry is built.
func (c Config) Validate() error {
	if c.Territories < 1 {
		return fmt.Errorf("%w: territories must be positive, got %d", game.ErrConfiguration, c.Territories)
	}
	if strings.TrimSpace(c.PlayerColor) == "" {
		return fmt.Errorf("%w: player color is empty", game.ErrConfiguration)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q: %w", game.ErrConfiguration, c.LogLevel, err)
	}
	return level, nil
}
