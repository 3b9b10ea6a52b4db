package core

import "fmt"

// RunLength is the number of aligned pieces needed to win.
const RunLength = 4

// Coord addresses a cell as (row, col). Row 0 is the top of the board.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate n steps along d.
func (c Coord) Step(d Direction, n int) Coord {
	return Coord{Row: c.Row + d.DRow*n, Col: c.Col + d.DCol*n}
}

// Direction is a unit step used to build runs.
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the four run orientations checked for a win.
var Directions = [4]Direction{
	{DRow: 0, DCol: 1},  // horizontal
	{DRow: 1, DCol: 0},  // vertical
	{DRow: 1, DCol: 1},  // diagonal down-right
	{DRow: 1, DCol: -1}, // diagonal down-left
}

// Run is four cells stepped from a start coordinate along a direction.
type Run [RunLength]Coord

// RunFrom builds the run starting at c along d.
func RunFrom(c Coord, d Direction) Run {
	var r Run
	for i := range RunLength {
		r[i] = c.Step(d, i)
	}
	return r
}
