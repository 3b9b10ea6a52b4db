package core

// Grid is the playing field. Cells are stored in row-major order:
// index = row*W + col. Dimensions never change after creation.
type Grid struct {
	W     int      // number of columns
	H     int      // number of rows
	Cells []Player // flat array of cells, length W*H
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Player, w*h),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.W + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.H && c.Col >= 0 && c.Col < g.W
}

// Get returns the occupant of a cell, or Empty if out of bounds.
func (g *Grid) Get(c Coord) Player {
	if !g.InBounds(c) {
		return Empty
	}
	return g.Cells[g.index(c)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, p Player) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = p
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.Cells)
}

// Rows returns a copy of the grid as [row][col].
func (g *Grid) Rows() [][]Player {
	rows := make([][]Player, g.H)
	for r := range rows {
		rows[r] = make([]Player, g.W)
		copy(rows[r], g.Cells[r*g.W:(r+1)*g.W])
	}
	return rows
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, p := range g.Cells {
		if p != Empty {
			count++
		}
	}
	return count
}

// IsFull returns true if no cell is empty.
func (g *Grid) IsFull() bool {
	return g.FilledCount() == len(g.Cells)
}

// DropRow scans col from the bottom row upward and returns the first empty
// row. ok is false when the column is full or out of range.
func (g *Grid) DropRow(col int) (row int, ok bool) {
	if col < 0 || col >= g.W {
		return -1, false
	}
	for row = g.H - 1; row >= 0; row-- {
		if g.Cells[g.index(At(row, col))] == Empty {
			return row, true
		}
	}
	return -1, false
}

// RunOwnedBy reports whether every cell of r is in bounds and held by p.
func (g *Grid) RunOwnedBy(r Run, p Player) bool {
	for _, c := range r {
		if !g.InBounds(c) || g.Cells[g.index(c)] != p {
			return false
		}
	}
	return true
}
