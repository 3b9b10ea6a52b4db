package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
)

// Board and timing overrides, shared by play, menu and config.
var (
	flagWidth        int
	flagHeight       int
	flagRestartDelay time.Duration
)

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
	cmd.Flags().DurationVar(&flagRestartDelay, "restart-delay", 0,
		"Pause before the next round starts, e.g. 3s (0 = wait for R)")
}

// loadConfig reads the config, applies command-line overrides and installs
// the result for new games.
func loadConfig(cmd *cobra.Command) (config.Connect4Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("restart-delay") {
		cfg.Timing.RestartDelay = flagRestartDelay
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}

	connect4.SetConfig(cfg)
	return cfg, nil
}

// newLogger returns a logger writing to --log, or one that discards
// everything. The returned close func must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           log.DebugLevel,
	})
	connect4.SetLogger(logger)

	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeLog, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// printResults shows the finished rounds of a session once the terminal is
// back to normal.
func printResults(w io.Writer, results []core.RoundResult) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintln(w, tui.ResultsTable(results))
	fmt.Fprintln(w)

	tally := tui.Tally(results)
	fmt.Fprintf(w, "Rounds: %d", len(results))
	for _, result := range slices.Sorted(maps.Keys(tally)) {
		fmt.Fprintf(w, "  %s: %d", result, tally[result])
	}
	fmt.Fprintln(w)
}
