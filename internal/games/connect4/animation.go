package connect4

import "github.com/vovakirdan/connect4/internal/games/connect4/core"

// dropAnimation tracks a piece falling from above the board to its landing
// row. Row -1 is the cursor line above the top of the board.
type dropAnimation struct {
	result      core.MoveResult
	row         int // row currently drawn
	ticksPerRow int
	ticksOnRow  int
}

func newDropAnimation(res core.MoveResult, ticksPerRow int) *dropAnimation {
	a := &dropAnimation{
		result:      res,
		row:         -1,
		ticksPerRow: ticksPerRow,
	}
	if ticksPerRow <= 0 {
		a.row = res.Row
	}
	return a
}

// advance moves the animation forward one tick.
// Returns true once the piece has landed.
func (a *dropAnimation) advance() bool {
	if a.done() {
		return true
	}
	a.ticksOnRow++
	if a.ticksOnRow >= a.ticksPerRow {
		a.ticksOnRow = 0
		a.row++
	}
	return a.done()
}

func (a *dropAnimation) done() bool {
	return a.row >= a.result.Row
}
