package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"classic-snake/game/types"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Board   Board   `toml:"board"`
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
	// Seed for food placement. 0 picks one from the clock.
	Seed uint64 `toml:"seed"`
}

type Board struct {
	Cols uint32 `toml:"cols"`
	Rows uint32 `toml:"rows"`
}

type Display struct {
	Frontend         string `toml:"frontend"`
	Title            string `toml:"title"`
	SquareWidth      int32  `toml:"square_width"`
	UpdatesPerSecond int    `toml:"updates_per_second"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives log output instead of stderr when set.
	File string `toml:"file"`
}

func Default() Config {
	return Config{
		Board: Board{
			Cols: types.DefaultCols,
			Rows: types.DefaultRows,
		},
		Display: Display{
			Frontend:         FrontendWindow,
			Title:            "Snake Game",
			SquareWidth:      types.SquareWidth,
			UpdatesPerSecond: types.UpdatesPerSecond,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys the file does not set
// keep their default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (c Config) Grid() types.Grid {
	return types.Grid{Cols: c.Board.Cols, Rows: c.Board.Rows}
}

func (c Config) Validate() error {
	switch {
	case c.Board.Cols < 2 || c.Board.Cols > 1024:
		return fmt.Errorf("%w: board.cols %d out of range [2, 1024]", ErrInvalidConfig, c.Board.Cols)
	case c.Board.Rows < 2 || c.Board.Rows > 1024:
		return fmt.Errorf("%w: board.rows %d out of range [2, 1024]", ErrInvalidConfig, c.Board.Rows)
	case c.Display.SquareWidth < 1 || c.Display.SquareWidth > 128:
		return fmt.Errorf("%w: display.square_width %d out of range [1, 128]", ErrInvalidConfig, c.Display.SquareWidth)
	case c.Display.UpdatesPerSecond < 1 || c.Display.UpdatesPerSecond > 120:
		return fmt.Errorf("%w: display.updates_per_second %d out of range [1, 120]", ErrInvalidConfig, c.Display.UpdatesPerSecond)
	case c.Display.Frontend != FrontendWindow && c.Display.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: display.frontend %q, want %q or %q", ErrInvalidConfig, c.Display.Frontend, FrontendWindow, FrontendTerminal)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
