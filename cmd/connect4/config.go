package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that play would use, as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.connect4/configs/connect4.yaml
  3. ./configs/connect4.yaml
  4. built-in defaults

Examples:
  connect4 config
  connect4 config --width 9 --height 7
  connect4 config --defaults
  connect4 config > ~/.connect4/configs/connect4.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	addOverrideFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "print the annotated built-in defaults and ignore config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
