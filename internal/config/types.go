// Package config provides YAML-based game configuration loading and
// board presets for Connect Four.
package config

import "time"

// Connect4Config contains all configuration for a Connect Four session.
type Connect4Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`  // columns
	Height int `yaml:"height"` // rows
}

// PlayersConfig holds per-player display settings.
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// PlayerConfig defines how a player is shown on screen.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // a core.ParseColor name, e.g. "red"
}

// TimingConfig defines animation and restart timing.
type TimingConfig struct {
	DropTicks    int           `yaml:"drop_ticks"`    // ticks per row of fall animation
	RestartDelay time.Duration `yaml:"restart_delay"` // wait after a round ends, 0 disables auto-restart
}

// BoardPreset names a standard board size.
type BoardPreset string

const (
	PresetClassic BoardPreset = "classic"
	PresetMini    BoardPreset = "mini"
	PresetLarge   BoardPreset = "large"
	PresetTiny    BoardPreset = "tiny"
)

// Presets lists the board presets in display order.
var Presets = []BoardPreset{PresetClassic, PresetMini, PresetLarge, PresetTiny}

// BoardForPreset returns the board dimensions for a preset.
func BoardForPreset(preset BoardPreset) (BoardConfig, bool) {
	switch preset {
	case PresetClassic:
		return BoardConfig{Width: 7, Height: 6}, true
	case PresetMini:
		return BoardConfig{Width: 5, Height: 4}, true
	case PresetLarge:
		return BoardConfig{Width: 9, Height: 7}, true
	case PresetTiny:
		return BoardConfig{Width: 3, Height: 3}, true // never produces a winner
	default:
		return BoardConfig{}, false
	}
}
