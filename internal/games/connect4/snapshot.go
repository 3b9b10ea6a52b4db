package connect4

import "github.com/vovakirdan/connect4/internal/games/connect4/core"

// Snapshot captures what the player sees, for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Round     int
	Width     int
	Height    int
	Cursor    int
	Grid      [][]core.Player // row 0 is the top row
	State     core.State
	Current   core.Player
	Moves     int
	Dropping  bool // a piece is still falling
	DropRow   int  // row of the falling piece, -1 above the board
	RestartIn int  // ticks until auto restart, 0 when not counting
	Flash     string
	Paused    bool
	TooSmall  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Variant:   g.id,
		Round:     g.round,
		Cursor:    g.cursor,
		RestartIn: g.restartIn,
		Flash:     g.flash,
		Paused:    g.paused,
		TooSmall:  g.tooSmall,
		DropRow:   -1,
	}
	if g.engine == nil {
		return s
	}

	s.Width = g.engine.Width()
	s.Height = g.engine.Height()
	s.Grid = g.engine.Grid()
	s.State = g.engine.State()
	s.Current = g.engine.CurrentPlayer()
	s.Moves = g.engine.MoveCount()
	if g.drop != nil {
		s.Dropping = true
		s.DropRow = g.drop.row
	}
	return s
}
