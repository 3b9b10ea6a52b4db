// Package connect4 drives a Connect Four engine from platform input: it moves
// the column cursor, animates drops, announces results and starts new rounds.
package connect4

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/config"
	platformcore "github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/core"
	"github.com/vovakirdan/connect4/internal/registry"
)

// Variant IDs. VariantDefault takes its board size from the loaded config,
// the others force a board preset.
const (
	VariantDefault = "connect4"
	VariantMini    = "mini"
	VariantLarge   = "large"
	VariantTiny    = "tiny"
)

const flashSeconds = 1 // how long a rejected-move message stays up

// Game implements registry.Game around a core.Engine.
type Game struct {
	id     string
	title  string
	preset config.BoardPreset // empty: use cfg.Board as loaded

	cfg    config.Connect4Config
	engine *core.Engine
	colors [3]platformcore.Color // indexed by core.Player
	logger *log.Logger

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	tick     uint64
	round    int
	cursor   int
	paused   bool
	tooSmall bool

	drop       *dropAnimation // piece in flight, input is ignored meanwhile
	restartIn  int            // ticks until the next round, 0 when not counting
	flash      string
	flashTicks int

	results []platformcore.RoundResult
}

// Package-level settings applied to games created after they are set.
var (
	activeConfig = config.DefaultConnect4Config()
	logger       = log.New(io.Discard)
)

// SetConfig sets the configuration used by newly created games.
func SetConfig(cfg config.Connect4Config) {
	activeConfig = cfg
}

// SetLogger sets the logger used by newly created games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(VariantDefault, 0, func() registry.Game {
		return New(VariantDefault, "Connect Four", "")
	})
	registry.Register(VariantMini, 1, func() registry.Game {
		return New(VariantMini, "Connect Four Mini (5x4)", config.PresetMini)
	})
	registry.Register(VariantLarge, 2, func() registry.Game {
		return New(VariantLarge, "Connect Four Large (9x7)", config.PresetLarge)
	})
	registry.Register(VariantTiny, 3, func() registry.Game {
		return New(VariantTiny, "Connect Three-by-Three (always ties)", config.PresetTiny)
	})
}

// New creates a game variant. The engine is built on the first Reset.
func New(id, title string, preset config.BoardPreset) *Game {
	return &Game{
		id:     id,
		title:  title,
		preset: preset,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a fresh session: it reloads settings, builds a new engine for
// the configured dimensions and lays out the screen.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = activeConfig
	if g.preset != "" {
		if err := config.ApplyBoardPreset(&g.cfg, g.preset); err != nil {
			logger.Warn("ignoring board preset", "preset", g.preset, "error", err)
		}
	}
	g.logger = logger.With("variant", g.id)

	engine, err := core.New(g.cfg.Board.Width, g.cfg.Board.Height)
	if err != nil {
		// Validated configs never get here; fall back to the classic board.
		g.logger.Error("invalid board, using 7x6", "error", err)
		engine = core.MustNew(7, 6)
	}
	g.engine = engine

	g.colors[core.Empty] = platformcore.ColorGray
	g.colors[core.Player1] = parseColor(g.cfg.Players.One.Color, platformcore.ColorRed)
	g.colors[core.Player2] = parseColor(g.cfg.Players.Two.Color, platformcore.ColorYellow)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.round = 0
	g.results = nil
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newRound()
}

// Resize updates the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// newRound clears the board in place and re-centres the cursor.
func (g *Game) newRound() {
	g.engine.Reset()
	g.round++
	g.cursor = g.engine.Width() / 2
	g.drop = nil
	g.restartIn = 0
	g.flash = ""
	g.flashTicks = 0
	g.logger.Debug("round started", "round", g.round,
		"width", g.engine.Width(), "height", g.engine.Height())
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(platformcore.ActionRestart) {
		g.logger.Info("round restarted by player", "round", g.round, "moves", g.engine.MoveCount())
		g.paused = false
		g.newRound()
		return platformcore.StepResult{State: g.State()}
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = ""
		}
	}

	// One move at a time: input waits until the falling piece lands.
	if g.drop != nil {
		if g.drop.advance() {
			g.land()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.engine.State().IsTerminal() {
		if g.restartIn > 0 {
			g.restartIn--
			if g.restartIn == 0 {
				g.logger.Debug("auto restart")
				g.newRound()
			}
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return platformcore.StepResult{State: g.State()}
}

// handleInput moves the cursor and drops pieces.
func (g *Game) handleInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionLeft) {
		g.moveCursor(-1)
	}
	if in.Has(platformcore.ActionRight) {
		g.moveCursor(1)
	}

	switch {
	case in.Has(platformcore.ActionColumn):
		g.tryMove(in.Column)
	case in.Has(platformcore.ActionDrop):
		g.tryMove(g.cursor)
	}
}

// moveCursor moves to the nearest playable column in direction dir (-1 or 1).
// Full columns are skipped; with nothing playable that way the cursor stays.
func (g *Game) moveCursor(dir int) {
	valid := g.engine.ValidColumns()
	if dir < 0 {
		slices.Reverse(valid)
	}
	for _, col := range valid {
		if (col-g.cursor)*dir > 0 {
			g.cursor = col
			return
		}
	}
}

// tryMove forwards a column to the engine. Rejected moves change nothing
// except a short status message.
func (g *Game) tryMove(col int) {
	res, err := g.engine.ApplyMove(col)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrColumnFull):
			g.flashMessage(fmt.Sprintf("Column %d is full", col+1))
		case errors.Is(err, core.ErrInvalidColumn):
			g.flashMessage(fmt.Sprintf("No column %d", col+1))
		}
		g.logger.Debug("move rejected", "column", col, "error", err)
		return
	}

	g.cursor = col
	g.logger.Debug("move", "round", g.round, "player", int(res.Player),
		"row", res.Row, "column", res.Col, "outcome", res.Outcome)

	g.drop = newDropAnimation(res, g.cfg.Timing.DropTicks)
	if g.drop.done() {
		g.land()
	}
}

// land finishes the drop animation and reacts to the move's outcome.
func (g *Game) land() {
	res := g.drop.result
	g.drop = nil

	switch res.Outcome.Kind {
	case core.OutcomeWin:
		winner := g.playerName(res.Outcome.Player)
		g.logger.Info("game won", "round", g.round, "winner", winner, "moves", g.engine.MoveCount())
		g.record(winner + " won")
		g.startRestartCountdown()
	case core.OutcomeTie:
		g.logger.Info("game tied", "round", g.round, "moves", g.engine.MoveCount())
		g.record("Tie")
		g.startRestartCountdown()
	}
}

func (g *Game) record(result string) {
	g.results = append(g.results, platformcore.RoundResult{
		Round:  g.round,
		Result: result,
		Moves:  g.engine.MoveCount(),
	})
}

// Results returns the finished rounds of this session, oldest first.
func (g *Game) Results() []platformcore.RoundResult {
	return slices.Clone(g.results)
}

func (g *Game) startRestartCountdown() {
	delay := g.cfg.Timing.RestartDelay
	if delay <= 0 {
		g.restartIn = 0
		return
	}
	g.restartIn = max(1, int(delay*time.Duration(g.tickRate)/time.Second))
}

func (g *Game) flashMessage(msg string) {
	g.flash = msg
	g.flashTicks = flashSeconds * g.tickRate
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	if g.engine == nil {
		return
	}
	minW, minH := layoutSize(g.engine.Width(), g.engine.Height())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// playerName returns the configured display name for p.
func (g *Game) playerName(p core.Player) string {
	switch p {
	case core.Player1:
		if g.cfg.Players.One.Name != "" {
			return g.cfg.Players.One.Name
		}
	case core.Player2:
		if g.cfg.Players.Two.Name != "" {
			return g.cfg.Players.Two.Name
		}
	}
	return p.String()
}

// State returns the platform view of the game state.
func (g *Game) State() platformcore.GameState {
	over := g.engine != nil && g.engine.State().IsTerminal() && g.drop == nil
	moves := 0
	if g.engine != nil {
		moves = g.engine.MoveCount()
	}
	return platformcore.GameState{
		Moves:    moves,
		GameOver: over,
		Paused:   g.paused || g.tooSmall,
	}
}

func parseColor(name string, fallback platformcore.Color) platformcore.Color {
	if c, ok := platformcore.ParseColor(name); ok {
		return c
	}
	return fallback
}
