package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the built-in configuration.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Width:  7,
			Height: 6,
		},
		Players: PlayersConfig{
			One: PlayerConfig{Name: "Player 1", Color: "red"},
			Two: PlayerConfig{Name: "Player 2", Color: "yellow"},
		},
		Timing: TimingConfig{
			DropTicks:    3,
			RestartDelay: 5 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultConnect4YAML
}
