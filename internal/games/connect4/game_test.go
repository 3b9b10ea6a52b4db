package connect4

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/connect4/internal/config"
	platformcore "github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/core"
	"github.com/vovakirdan/connect4/internal/registry"
)

const testTickRate = 10

func testRuntime() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: testTickRate}
}

// newTestGame creates a classic game with the given animation speed and
// restart delay. The package config is restored when the test ends.
func newTestGame(t *testing.T, dropTicks int, restartDelay time.Duration) *Game {
	t.Helper()

	prev := activeConfig
	t.Cleanup(func() { activeConfig = prev })

	cfg := config.DefaultConnect4Config()
	cfg.Timing.DropTicks = dropTicks
	cfg.Timing.RestartDelay = restartDelay
	SetConfig(cfg)

	g := New(VariantDefault, "Connect Four", "")
	g.Reset(testRuntime())
	return g
}

func press(g *Game, a platformcore.Action) {
	in := platformcore.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func dropIn(g *Game, cols ...int) {
	for _, col := range cols {
		in := platformcore.NewInputFrame()
		in.SetColumn(col)
		g.Step(in)
	}
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(platformcore.NewInputFrame())
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id   string
		w, h int
	}{
		{VariantDefault, 7, 6},
		{VariantMini, 5, 4},
		{VariantLarge, 9, 7},
		{VariantTiny, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if !registry.Exists(tt.id) {
				t.Fatalf("variant %q not registered", tt.id)
			}
			game, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tt.id, err)
			}
			game.Reset(testRuntime())

			snap := game.(*Game).Snapshot()
			if snap.Width != tt.w || snap.Height != tt.h {
				t.Errorf("board = %dx%d, want %dx%d", snap.Width, snap.Height, tt.w, tt.h)
			}
			if snap.State.Phase != core.PhaseNotStarted {
				t.Errorf("state = %v, want NotStarted", snap.State)
			}
		})
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	if got := g.Snapshot().Cursor; got != 3 {
		t.Fatalf("initial cursor = %d, want 3", got)
	}

	for range 10 {
		press(g, platformcore.ActionLeft)
	}
	if got := g.Snapshot().Cursor; got != 0 {
		t.Errorf("cursor after moving left = %d, want 0", got)
	}

	for range 10 {
		press(g, platformcore.ActionRight)
	}
	if got := g.Snapshot().Cursor; got != 6 {
		t.Errorf("cursor after moving right = %d, want 6", got)
	}
}

func TestDropAtCursor(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionDrop)

	snap := g.Snapshot()
	if snap.Grid[5][4] != core.Player1 {
		t.Errorf("bottom of column 4 = %v, want Player 1", snap.Grid[5][4])
	}
	if snap.Current != core.Player2 {
		t.Errorf("current = %v, want Player 2", snap.Current)
	}
	if snap.State.Phase != core.PhaseInProgress {
		t.Errorf("state = %v, want InProgress", snap.State)
	}
}

func TestColumnKeyMovesCursor(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	dropIn(g, 0)

	snap := g.Snapshot()
	if snap.Grid[5][0] != core.Player1 {
		t.Errorf("bottom of column 0 = %v, want Player 1", snap.Grid[5][0])
	}
	if snap.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", snap.Cursor)
	}
}

func TestDropAnimationBlocksInput(t *testing.T) {
	g := newTestGame(t, 2, time.Second)

	dropIn(g, 0)
	snap := g.Snapshot()
	if !snap.Dropping || snap.DropRow != -1 {
		t.Fatalf("after drop: dropping=%v row=%d, want true -1", snap.Dropping, snap.DropRow)
	}
	// The engine already holds the move.
	if snap.Moves != 1 {
		t.Fatalf("moves = %d, want 1", snap.Moves)
	}
	if g.State().GameOver {
		t.Fatal("game over during animation")
	}

	// Six rows at two ticks each; column presses meanwhile are dropped.
	for range 12 {
		dropIn(g, 1)
	}

	snap = g.Snapshot()
	if snap.Dropping {
		t.Fatalf("still dropping at row %d", snap.DropRow)
	}
	if snap.Moves != 1 {
		t.Errorf("moves = %d, want 1", snap.Moves)
	}
	if snap.Grid[5][1] != core.Empty {
		t.Errorf("column 1 was played during the animation")
	}

	dropIn(g, 1)
	if got := g.Snapshot().Moves; got != 2 {
		t.Errorf("moves after landing = %d, want 2", got)
	}
}

func TestFullColumnShowsMessage(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	dropIn(g, 0, 0, 0, 0, 0, 0)
	before := g.Snapshot()

	dropIn(g, 0)
	snap := g.Snapshot()
	if snap.Flash != "Column 1 is full" {
		t.Errorf("flash = %q, want %q", snap.Flash, "Column 1 is full")
	}
	if snap.Moves != before.Moves || snap.Current != before.Current {
		t.Errorf("rejected move changed the game: moves %d->%d current %v->%v",
			before.Moves, snap.Moves, before.Current, snap.Current)
	}

	idle(g, testTickRate)
	if got := g.Snapshot().Flash; got != "" {
		t.Errorf("flash still shown: %q", got)
	}
}

func TestWinAutoRestarts(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	dropIn(g, 0, 6, 1, 6, 2, 6, 3)

	snap := g.Snapshot()
	want := core.State{Phase: core.PhaseWon, Winner: core.Player1}
	if snap.State != want {
		t.Fatalf("state = %v, want %v", snap.State, want)
	}
	if !g.State().GameOver {
		t.Error("GameOver = false after a win")
	}
	if snap.RestartIn != testTickRate {
		t.Errorf("restartIn = %d, want %d", snap.RestartIn, testTickRate)
	}

	// Moves after the end are ignored.
	dropIn(g, 5)
	if got := g.Snapshot().Moves; got != 7 {
		t.Errorf("moves after win = %d, want 7", got)
	}

	idle(g, testTickRate-2)
	if g.Snapshot().State.Phase != core.PhaseWon {
		t.Fatal("round restarted early")
	}

	idle(g, 1)
	snap = g.Snapshot()
	if snap.State.Phase != core.PhaseNotStarted {
		t.Errorf("state after countdown = %v, want NotStarted", snap.State)
	}
	if snap.Round != 2 || snap.Moves != 0 {
		t.Errorf("round=%d moves=%d, want 2 and 0", snap.Round, snap.Moves)
	}
	if snap.Current != core.Player1 {
		t.Errorf("current = %v, want Player 1", snap.Current)
	}
}

func TestZeroRestartDelayWaitsForKey(t *testing.T) {
	g := newTestGame(t, 0, 0)

	dropIn(g, 0, 1, 0, 1, 0, 1, 0)
	if g.Snapshot().State.Winner != core.Player1 {
		t.Fatalf("state = %v, want Won(Player 1)", g.Snapshot().State)
	}

	idle(g, 100)
	if g.Snapshot().State.Phase != core.PhaseWon {
		t.Fatal("round restarted without a key press")
	}

	press(g, platformcore.ActionRestart)
	snap := g.Snapshot()
	if snap.State.Phase != core.PhaseNotStarted || snap.Round != 2 {
		t.Errorf("after restart: state=%v round=%d", snap.State, snap.Round)
	}
}

func TestRestartMidGame(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	dropIn(g, 2, 3, 4)
	press(g, platformcore.ActionRestart)

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.State.Phase != core.PhaseNotStarted {
		t.Errorf("after restart: moves=%d state=%v", snap.Moves, snap.State)
	}
	for r, row := range snap.Grid {
		for c, p := range row {
			if p != core.Empty {
				t.Fatalf("cell (%d,%d) = %v after restart", r, c, p)
			}
		}
	}
}

func TestTinyBoardTies(t *testing.T) {
	prev := activeConfig
	t.Cleanup(func() { activeConfig = prev })
	cfg := config.DefaultConnect4Config()
	cfg.Timing.DropTicks = 0
	SetConfig(cfg)

	g := New(VariantTiny, "tiny", config.PresetTiny)
	g.Reset(testRuntime())

	dropIn(g, 0, 0, 0, 1, 1, 1, 2, 2, 2)

	snap := g.Snapshot()
	if snap.State.Phase != core.PhaseTied {
		t.Errorf("state = %v, want Tied", snap.State)
	}
	if !g.State().GameOver {
		t.Error("GameOver = false after a tie")
	}
}

func TestPauseIgnoresMoves(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	press(g, platformcore.ActionPause)
	dropIn(g, 0)
	if got := g.Snapshot().Moves; got != 0 {
		t.Fatalf("moves while paused = %d, want 0", got)
	}

	press(g, platformcore.ActionPause)
	dropIn(g, 0)
	if got := g.Snapshot().Moves; got != 1 {
		t.Errorf("moves after unpause = %d, want 1", got)
	}
}

func TestTooSmallScreenKeepsBoard(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	dropIn(g, 3)
	g.Resize(20, 10)

	if !g.Snapshot().TooSmall {
		t.Fatal("20x10 should be too small for a 7x6 board")
	}
	if !g.State().Paused {
		t.Error("too-small game should report paused")
	}

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message not rendered")
	}

	dropIn(g, 4)
	g.Resize(80, 24)
	snap := g.Snapshot()
	if snap.TooSmall {
		t.Fatal("80x24 should fit")
	}
	if snap.Moves != 1 || snap.Grid[5][3] != core.Player1 {
		t.Errorf("resize changed the board: moves=%d", snap.Moves)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 0, time.Second)
	dropIn(g, 0)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	// 7 columns of width 4 plus a border, centred on 80.
	boardX := (80 - (7*cellWidth + 1)) / 2
	x, y := cellCenterX(boardX, 0), rowY(5)

	cell := screen.GetCell(x, y)
	if cell.Rune != pieceRune {
		t.Errorf("cell rune = %q, want %q", cell.Rune, pieceRune)
	}
	if cell.Color != platformcore.ColorRed {
		t.Errorf("cell color = %v, want red", cell.Color)
	}
	if got := screen.Get(cellCenterX(boardX, 1), y); got != emptyRune {
		t.Errorf("empty cell rune = %q, want %q", got, emptyRune)
	}

	out := screen.String()
	for _, want := range []string{"Connect Four", "Player 2's turn", "Moves 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderHidesFallingPieceTarget(t *testing.T) {
	g := newTestGame(t, 2, time.Second)
	dropIn(g, 0)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	boardX := (80 - (7*cellWidth + 1)) / 2
	x := cellCenterX(boardX, 0)
	if got := screen.Get(x, rowY(5)); got != emptyRune {
		t.Errorf("landing cell = %q before the piece arrives", got)
	}
	if got := screen.Get(x, rowY(-1)); got != pieceRune {
		t.Errorf("falling piece = %q, want %q above the board", got, pieceRune)
	}
}

func TestRenderWinningRun(t *testing.T) {
	g := newTestGame(t, 0, 0)
	dropIn(g, 0, 6, 1, 6, 2, 6, 3)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	boardX := (80 - (7*cellWidth + 1)) / 2
	for c := range 4 {
		if got := screen.Get(cellCenterX(boardX, c), rowY(5)); got != winningRune {
			t.Errorf("column %d rune = %q, want %q", c, got, winningRune)
		}
	}
	if got := screen.Get(cellCenterX(boardX, 6), rowY(5)); got != pieceRune {
		t.Errorf("loser piece rune = %q, want %q", got, pieceRune)
	}
	if !strings.Contains(screen.String(), "Player 1 won!") {
		t.Error("result not rendered")
	}
}

func TestResultsRecordsFinishedRounds(t *testing.T) {
	g := newTestGame(t, 0, 0)

	dropIn(g, 0, 6, 1, 6, 2, 6, 3)
	press(g, platformcore.ActionRestart)
	dropIn(g, 2, 3) // abandoned round is not recorded
	press(g, platformcore.ActionRestart)
	dropIn(g, 0, 1, 0, 1, 0, 1, 5, 1)

	want := []platformcore.RoundResult{
		{Round: 1, Result: "Player 1 won", Moves: 7},
		{Round: 3, Result: "Player 2 won", Moves: 8},
	}
	got := g.Results()
	if len(got) != len(want) {
		t.Fatalf("results = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("results[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCursorSkipsFullColumns(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	// Fill columns 2 and 4 without a winner; the cursor starts on 3.
	dropIn(g, 2, 2, 2, 2, 2, 2, 4, 4, 4, 4, 4, 4)
	g.cursor = 3

	press(g, platformcore.ActionLeft)
	if got := g.Snapshot().Cursor; got != 1 {
		t.Errorf("cursor after left = %d, want 1", got)
	}

	g.cursor = 3
	press(g, platformcore.ActionRight)
	if got := g.Snapshot().Cursor; got != 5 {
		t.Errorf("cursor after right = %d, want 5", got)
	}
}

func TestCursorStaysWithNothingPlayableThatWay(t *testing.T) {
	g := newTestGame(t, 0, time.Second)

	// Columns 0 and 1 are full, so from 2 there is nowhere to go left.
	dropIn(g, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1)
	g.cursor = 2

	press(g, platformcore.ActionLeft)
	if got := g.Snapshot().Cursor; got != 2 {
		t.Errorf("cursor = %d, want 2", got)
	}
}

func TestRenderMarksLastMove(t *testing.T) {
	g := newTestGame(t, 0, time.Second)
	dropIn(g, 2, 4)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	boardX := (80 - (7*cellWidth + 1)) / 2
	x, y := cellCenterX(boardX, 4), rowY(5)
	if screen.Get(x-1, y) != lastMoveLeft || screen.Get(x+1, y) != lastMoveRight {
		t.Errorf("last move not bracketed: %q", []rune{screen.Get(x-1, y), screen.Get(x, y), screen.Get(x+1, y)})
	}

	x = cellCenterX(boardX, 2)
	if screen.Get(x-1, y) == lastMoveLeft {
		t.Error("earlier move still bracketed")
	}
}
