package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/logging"
	"classic-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError writes a fatal error where the player sees it. The logger may
// be discarding output while the terminal frontend owns the tty.
func reportError(w io.Writer, err error) int {
	logging.LogError("%v", err)
	fmt.Fprintf(w, "snake: %v\n", err)
	return 1
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("snake", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a TOML config file")
	frontend := flags.String("frontend", "", "Frontend to use: window or terminal")
	seed := flags.Uint64("seed", 0, "Seed for food placement (0 = from clock)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *frontend != "" {
		cfg.Display.Frontend = *frontend
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logOut, closeLog, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Configure(logOut, cfg.Log.Level); err != nil {
		return err
	}

	g, err := game.NewGame(cfg.Grid(), cfg.Seed)
	if err != nil {
		return err
	}

	fe, err := newFrontend(cfg)
	if err != nil {
		return err
	}
	logging.LogInfo("starting %s frontend, %dx%d board, seed %d",
		cfg.Display.Frontend, cfg.Board.Cols, cfg.Board.Rows, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := fe.Run(ctx, g); err != nil {
		return err
	}

	fmt.Fprintln(stdout, g.Summary())
	return nil
}

func newFrontend(cfg config.Config) (ui.Frontend, error) {
	if cfg.Display.Frontend == config.FrontendTerminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("initialising terminal: %w", err)
		}
		return &ui.TerminalFrontend{
			Screen:           screen,
			UpdatesPerSecond: cfg.Display.UpdatesPerSecond,
		}, nil
	}

	return &ui.WindowFrontend{
		Title:            cfg.Display.Title,
		SquareWidth:      cfg.Display.SquareWidth,
		UpdatesPerSecond: cfg.Display.UpdatesPerSecond,
	}, nil
}

// logOutput picks where logs go. The terminal frontend owns the tty, so its
// logs are dropped unless a file is configured.
func logOutput(cfg config.Config) (io.Writer, func(), error) {
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if cfg.Display.Frontend == config.FrontendTerminal {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
