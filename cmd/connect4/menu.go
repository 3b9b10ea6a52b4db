package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  connect4 menu
  connect4 menu --fps 30
  connect4 menu --restart-delay 2s`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addOverrideFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	// Menu loop
	for {
		selected, updated, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		// Keep any size changes seen by the menu
		cfg = updated

		if selected == nil {
			return nil
		}

		if err := playVariant(selected.GameID, cfg, logger); err != nil {
			return err
		}
	}
}
