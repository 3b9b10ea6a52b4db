package core

import "fmt"

// Engine owns one game: the grid, whose turn it is, and the game state.
// It is not safe for concurrent use; callers apply one move at a time.
type Engine struct {
	grid    *Grid
	state   State
	current Player
	moves   int

	last    Coord
	hasLast bool

	winRun Run
}

// Board size limits. Anything larger cannot be shown in a terminal.
const (
	MaxWidth  = 64
	MaxHeight = 64
)

// New creates an engine with an empty width x height grid.
// Boards smaller than RunLength in both directions are accepted; they can only
// end in a tie.
func New(width, height int) (*Engine, error) {
	if width < 1 || height < 1 || width > MaxWidth || height > MaxHeight {
		return nil, fmt.Errorf("%w: got %dx%d, want 1x1 to %dx%d",
			ErrInvalidSize, width, height, MaxWidth, MaxHeight)
	}
	e := &Engine{grid: NewGrid(width, height)}
	e.Reset()
	return e, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height int) *Engine {
	e, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return e
}

// Reset empties the grid, returns to NotStarted and gives Player1 the turn.
// Dimensions are preserved.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.state = State{Phase: PhaseNotStarted}
	e.current = Player1
	e.moves = 0
	e.hasLast = false
	e.winRun = Run{}
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.grid.W }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.grid.H }

// State returns the current game state.
func (e *Engine) State() State { return e.state }

// CurrentPlayer returns the player whose turn it is. After a win it is the
// winner, since the turn does not pass once the game is over.
func (e *Engine) CurrentPlayer() Player { return e.current }

// MoveCount returns the number of pieces placed since the last reset.
func (e *Engine) MoveCount() int { return e.moves }

// LastMove returns the cell filled by the most recent move.
func (e *Engine) LastMove() (Coord, bool) { return e.last, e.hasLast }

// Grid returns a snapshot of the board as [row][col], row 0 at the top.
func (e *Engine) Grid() [][]Player { return e.grid.Rows() }

// Cell returns the occupant at (row, col), or Empty when out of bounds.
func (e *Engine) Cell(row, col int) Player { return e.grid.Get(At(row, col)) }

// FindDropRow returns the row a piece dropped into col would land on.
// ok is false when col is out of range or the column is full.
func (e *Engine) FindDropRow(col int) (row int, ok bool) {
	return e.grid.DropRow(col)
}

// ValidColumns lists every column that can still accept a piece.
func (e *Engine) ValidColumns() []int {
	cols := make([]int, 0, e.grid.W)
	for col := range e.grid.W {
		if _, ok := e.grid.DropRow(col); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// ApplyMove drops the current player's piece into col.
// On error the engine is left untouched.
func (e *Engine) ApplyMove(col int) (MoveResult, error) {
	if e.state.IsTerminal() {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrInvalidState, e.state)
	}
	if col < 0 || col >= e.grid.W {
		return MoveResult{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidColumn, col, e.grid.W)
	}
	row, ok := e.grid.DropRow(col)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: column %d", ErrColumnFull, col)
	}

	player := e.current
	placed := At(row, col)
	e.grid.Set(placed, player)
	e.moves++
	e.last, e.hasLast = placed, true
	if e.state.Phase == PhaseNotStarted {
		e.state.Phase = PhaseInProgress
	}

	result := MoveResult{Row: row, Col: col, Player: player}

	if run, won := e.winsThrough(placed, player); won {
		e.state = State{Phase: PhaseWon, Winner: player}
		e.winRun = run
		result.Outcome = Win(player)
		return result, nil
	}

	if e.grid.IsFull() {
		e.state = State{Phase: PhaseTied}
		result.Outcome = Tie()
		return result, nil
	}

	e.current = player.Other()
	result.Outcome = Continue(e.current)
	return result, nil
}

// WinningRun returns the run that ended the game. ok is false unless the
// state is Won.
func (e *Engine) WinningRun() (Run, bool) {
	if e.state.Phase != PhaseWon {
		return Run{}, false
	}
	return e.winRun, true
}
