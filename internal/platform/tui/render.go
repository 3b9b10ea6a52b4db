// Package tui runs registered games in the terminal with Bubble Tea.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/core"
)

// ansiCodes holds the terminal palette index for each game color.
// ColorDefault is absent and renders unstyled.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	m := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return m
}

// span is a stretch of one row drawn in a single color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-colored spans, left to right.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var text strings.Builder
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != spans[len(spans)-1].color {
			spans[len(spans)-1].text = text.String()
			text.Reset()
		}
		if x == 0 || cell.Color != spans[len(spans)-1].color {
			spans = append(spans, span{color: cell.Color})
		}
		text.WriteRune(cell.Rune)
	}
	if len(spans) > 0 {
		spans[len(spans)-1].text = text.String()
	}
	return spans
}

// RenderScreen turns the buffer into terminal text, one escape
// sequence per color change rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			style, ok := styles[sp.color]
			if !ok {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(style.Render(sp.text))
		}
	}
	return sb.String()
}
