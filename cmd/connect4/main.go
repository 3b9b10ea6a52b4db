// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 list              - List board variants
//	connect4 play [variant]    - Play a variant (default: connect4)
//	connect4 menu              - Pick a variant interactively
//	connect4 config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/connect4/internal/games/connect4"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing one keyboard.

Players take turns dropping pieces into columns. The first to line up
four in a row, column or diagonal wins; a full board is a tie.

Available commands:
  list     - Show board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  config   - Print the effective configuration

Examples:
  connect4 play
  connect4 play mini
  connect4 play --width 8 --height 8
  connect4 menu --log /tmp/connect4.log
  connect4 config > ~/.connect4/configs/connect4.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
