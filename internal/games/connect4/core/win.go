package core

// CheckWin scans every cell and every direction for a run of four held by
// player. It returns on the first run found.
func (e *Engine) CheckWin(player Player) bool {
	_, ok := findRun(e.grid, player)
	return ok
}

// findRun is the full-board scan behind CheckWin, in row-major order.
func findRun(g *Grid, player Player) (Run, bool) {
	if !player.Valid() {
		return Run{}, false
	}
	for row := range g.H {
		for col := range g.W {
			for _, d := range Directions {
				run := RunFrom(At(row, col), d)
				if g.RunOwnedBy(run, player) {
					return run, true
				}
			}
		}
	}
	return Run{}, false
}

// winsThrough only examines runs that contain c. A new piece can only complete
// a line through its own cell, so after a move this gives the same answer as
// the full scan.
func (e *Engine) winsThrough(c Coord, player Player) (Run, bool) {
	for _, d := range Directions {
		for offset := range RunLength {
			run := RunFrom(c.Step(d, -offset), d)
			if e.grid.RunOwnedBy(run, player) {
				return run, true
			}
		}
	}
	return Run{}, false
}
