package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"war/game"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Config{
			Territories: 5,
			Missions:    true,
			PlayerColor: "Azul",
			LogLevel:    "warn",
		}, cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("WAR_TERRITORIES", "3")
		t.Setenv("WAR_MANUAL", "true")
		t.Setenv("WAR_MISSIONS", "false")
		t.Setenv("WAR_PLAYER_COLOR", "Verde")
		t.Setenv("WAR_SEED", "12")
		t.Setenv("WAR_LOG_LEVEL", "debug")
		t.Setenv("WAR_HISTORY_DIR", "/tmp/war")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Config{
			Territories: 3,
			Manual:      true,
			Missions:    false,
			PlayerColor: "Verde",
			Seed:        12,
			LogLevel:    "debug",
			HistoryDir:  "/tmp/war",
		}, cfg)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("WAR_TERRITORIES", "five")
		_, err := Load()
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Territories: 5, PlayerColor: "Azul", LogLevel: "warn"}

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{name: "valid", modify: func(c *Config) {}, ok: true},
		{name: "upper case level", modify: func(c *Config) { c.LogLevel = "DEBUG" }, ok: true},
		{name: "no territories", modify: func(c *Config) { c.Territories = 0 }},
		{name: "blank color", modify: func(c *Config) { c.PlayerColor = "  " }},
		{name: "bad level", modify: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, game.ErrConfiguration)
		})
	}
}

func TestLevel(t *testing.T) {
	level, err := Config{LogLevel: "info"}.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}
