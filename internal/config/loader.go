package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/connect4/internal/core"
	engine "github.com/vovakirdan/connect4/internal/games/connect4/core"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "connect4.yaml"

// Board size bounds accepted by Validate, the same as the engine's.
const (
	MinBoardSize   = 1
	MaxBoardWidth  = engine.MaxWidth
	MaxBoardHeight = engine.MaxHeight
)

// Validation errors.
var (
	ErrInvalidBoard  = errors.New("board size out of range")
	ErrUnknownColor  = errors.New("unknown color")
	ErrInvalidTiming = errors.New("timing values must not be negative")
	ErrUnknownPreset = errors.New("unknown board preset")
)

// Load loads Connect Four configuration.
// Search order: customPath -> ~/.connect4/configs/connect4.yaml -> ./configs/connect4.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Connect4Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Connect4Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	// Try user config directory, then local configs directory.
	// A missing file is skipped; a broken one is an error.
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Connect4Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parseFile(path, data)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultConnect4YAML)
	if err != nil {
		return DefaultConnect4Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseFile(path string, data []byte) (Connect4Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Connect4Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Connect4Config, error) {
	cfg := DefaultConnect4Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Connect4Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Connect4Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Connect4Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the config can drive a game.
// Boards under four cells in both directions are allowed; they always tie.
func (c Connect4Config) Validate() error {
	b := c.Board
	if b.Width < MinBoardSize || b.Height < MinBoardSize || b.Width > MaxBoardWidth || b.Height > MaxBoardHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d to %dx%d", ErrInvalidBoard,
			b.Width, b.Height, MinBoardSize, MinBoardSize, MaxBoardWidth, MaxBoardHeight)
	}
	for _, p := range []PlayerConfig{c.Players.One, c.Players.Two} {
		if _, ok := core.ParseColor(p.Color); !ok {
			return fmt.Errorf("%w %q for %s", ErrUnknownColor, p.Color, p.Name)
		}
	}
	if c.Timing.DropTicks < 0 || c.Timing.RestartDelay < 0 {
		return ErrInvalidTiming
	}
	return nil
}

// ApplyBoardPreset replaces the board size with a named preset.
func ApplyBoardPreset(cfg *Connect4Config, preset BoardPreset) error {
	board, ok := BoardForPreset(preset)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, preset)
	}
	cfg.Board = board
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connect4", "configs", filename)
}
