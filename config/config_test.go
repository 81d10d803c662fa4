package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"classic-snake/config"
	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, types.Grid{Cols: 30, Rows: 20}, cfg.Grid())
	assert.Equal(t, int32(20), cfg.Display.SquareWidth)
	assert.Equal(t, 8, cfg.Display.UpdatesPerSecond)
	assert.Equal(t, config.FrontendWindow, cfg.Display.Frontend)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path keeps defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file overrides only what it sets", func(t *testing.T) {
		path := writeConfig(t, `
seed = 42

[board]
cols = 12

[display]
frontend = "terminal"

[log]
level = "debug"
file = "snake.log"
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, uint32(12), cfg.Board.Cols)
		assert.Equal(t, uint32(20), cfg.Board.Rows)
		assert.Equal(t, config.FrontendTerminal, cfg.Display.Frontend)
		assert.Equal(t, 8, cfg.Display.UpdatesPerSecond)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "snake.log", cfg.Log.File)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "[board]\nwalls = false\n")
		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, "[board]\nrows = 1\n")
		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"cols too small", func(c *config.Config) { c.Board.Cols = 1 }},
		{"rows too large", func(c *config.Config) { c.Board.Rows = 5000 }},
		{"square width zero", func(c *config.Config) { c.Display.SquareWidth = 0 }},
		{"no updates", func(c *config.Config) { c.Display.UpdatesPerSecond = 0 }},
		{"unknown frontend", func(c *config.Config) { c.Display.Frontend = "web" }},
		{"bad log level", func(c *config.Config) { c.Log.Level = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
