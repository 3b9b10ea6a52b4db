package connect4

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/core"
)

const (
	cellWidth = 4 // columns are 4 characters apart, border included

	titleY   = 0
	statusY  = 1
	infoY    = 2
	cursorY  = 4 // cursor marker and the piece before it enters the board
	boardTop = 5 // top border line

	pieceRune   = '●'
	winningRune = '◉'
	emptyRune   = '·'
	cursorRune  = '▼'

	lastMoveLeft  = '['
	lastMoveRight = ']'
)

// layoutSize returns the minimum screen size for a board.
func layoutSize(w, h int) (minW, minH int) {
	return w*cellWidth + 1 + 2, boardTop + h + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.engine.Width()*cellWidth + 1
	boardX := (g.screenW - boardW) / 2

	g.renderHUD(dst)
	g.renderCursor(dst, boardX)
	g.renderBoard(dst, boardX)
	g.renderPieces(dst, boardX)

	if g.paused {
		boardH := g.engine.Height() + 2
		g.drawOverlay(dst, boardX+boardW/2, boardTop+boardH/2, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := layoutSize(g.engine.Width(), g.engine.Height())
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, whose turn it is or the result, and round info.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(titleY, g.title)

	status, color := g.statusLine()
	dst.DrawTextCenteredColored(statusY, status, color)

	info := fmt.Sprintf("Round %d  Moves %d  %dx%d", g.round, g.engine.MoveCount(),
		g.engine.Width(), g.engine.Height())
	dst.DrawTextCenteredColored(infoY, info, platformcore.ColorGray)
}

// statusLine returns the text and color of the status line.
func (g *Game) statusLine() (string, platformcore.Color) {
	if g.flash != "" {
		return g.flash, platformcore.ColorBrightRed
	}

	state := g.engine.State()
	if g.drop != nil {
		mover := g.drop.result.Player
		return g.playerName(mover) + "'s turn", g.colors[mover]
	}

	switch state.Phase {
	case core.PhaseNotStarted:
		return g.playerName(core.Player1) + " starts: press Space to drop", g.colors[core.Player1]
	case core.PhaseWon:
		return g.playerName(state.Winner) + " won!" + g.restartHint(), g.colors[state.Winner]
	case core.PhaseTied:
		return "Tie!" + g.restartHint(), platformcore.ColorBrightWhite
	default:
		current := g.engine.CurrentPlayer()
		return g.playerName(current) + "'s turn", g.colors[current]
	}
}

// restartHint tells the player when the next round begins.
func (g *Game) restartHint() string {
	if g.restartIn <= 0 {
		return "  Press R for a new round"
	}
	secs := (g.restartIn + g.tickRate - 1) / g.tickRate
	return fmt.Sprintf("  Next round in %ds", secs)
}

// renderCursor marks the selected column above the board.
func (g *Game) renderCursor(dst *platformcore.Screen, boardX int) {
	if g.engine.State().IsTerminal() || g.drop != nil {
		return
	}
	x := cellCenterX(boardX, g.cursor)
	dst.SetColored(x, cursorY, cursorRune, g.colors[g.engine.CurrentPlayer()])
}

// renderBoard draws the grid frame and column numbers.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX int) {
	w, h := g.engine.Width(), g.engine.Height()
	bottom := boardTop + h + 1

	for c := range w + 1 {
		x := boardX + c*cellWidth

		var top, base rune
		switch c {
		case 0:
			top, base = '┌', '└'
		case w:
			top, base = '┐', '┘'
		default:
			top, base = '┬', '┴'
		}
		dst.Set(x, boardTop, top)
		dst.Set(x, bottom, base)

		for y := boardTop + 1; y < bottom; y++ {
			dst.Set(x, y, '│')
		}

		if c < w {
			for i := 1; i < cellWidth; i++ {
				dst.Set(x+i, boardTop, '─')
				dst.Set(x+i, bottom, '─')
			}
			// Number keys only reach the first nine columns.
			if c < 9 {
				dst.DrawTextColored(cellCenterX(boardX, c), bottom+1, strconv.Itoa(c+1), platformcore.ColorGray)
			}
		}
	}
}

// renderPieces draws placed pieces, the winning run and a falling piece.
func (g *Game) renderPieces(dst *platformcore.Screen, boardX int) {
	winning := make(map[core.Coord]bool, core.RunLength)
	if run, ok := g.engine.WinningRun(); ok && g.drop == nil {
		for _, c := range run {
			winning[c] = true
		}
	}

	for r := range g.engine.Height() {
		for c := range g.engine.Width() {
			x, y := cellCenterX(boardX, c), rowY(r)
			p := g.engine.Cell(r, c)

			// The landing cell stays empty until the piece gets there.
			if g.drop != nil && r == g.drop.result.Row && c == g.drop.result.Col {
				p = core.Empty
			}

			switch {
			case p == core.Empty:
				dst.SetColored(x, y, emptyRune, g.colors[core.Empty])
			case winning[core.At(r, c)]:
				dst.SetColored(x, y, winningRune, g.colors[p])
			default:
				dst.SetColored(x, y, pieceRune, g.colors[p])
			}
		}
	}

	if g.drop != nil {
		res := g.drop.result
		dst.SetColored(cellCenterX(boardX, res.Col), rowY(g.drop.row), pieceRune, g.colors[res.Player])
		return
	}

	// Bracket the piece that was played last.
	if last, ok := g.engine.LastMove(); ok {
		x, y := cellCenterX(boardX, last.Col), rowY(last.Row)
		dst.SetColored(x-1, y, lastMoveLeft, platformcore.ColorBrightWhite)
		dst.SetColored(x+1, y, lastMoveRight, platformcore.ColorBrightWhite)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := platformcore.RectAround(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawPanel(box, platformcore.ColorDefault)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

func cellCenterX(boardX, col int) int {
	return boardX + col*cellWidth + cellWidth/2
}

// rowY maps an engine row to a screen line; row -1 is the cursor line.
func rowY(row int) int {
	if row < 0 {
		return cursorY
	}
	return boardTop + 1 + row
}
