package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Connect Four",
	Long: `Start a two-player game on the given board variant.

Controls:
  Left/Right, A/D  - Move the column cursor
  Space/Enter      - Drop a piece
  1-9              - Drop straight into a column
  R                - New round
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

After a win or tie the next round starts automatically after the
restart delay (0 waits for R).

Examples:
  connect4 play
  connect4 play mini
  connect4 play --width 10 --height 8
  connect4 play --restart-delay 0
  connect4 play --config ./my-connect4.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addOverrideFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := connect4.VariantDefault
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'connect4 list' to see them)", variant)
	}

	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return playVariant(variant, runtimeConfig(), logger)
}

// playVariant runs one variant until the player quits, then prints the
// session's results.
func playVariant(variant string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	logger.Info("session started", "variant", variant, "fps", cfg.TickRate)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if r, ok := game.(interface{ Results() []core.RoundResult }); ok {
		printResults(os.Stdout, r.Results())
	}
	return nil
}
