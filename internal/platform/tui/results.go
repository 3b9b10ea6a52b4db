package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/core"
)

// ResultsTable renders finished rounds as a static table, for printing once
// the program has left the alternate screen.
func ResultsTable(results []core.RoundResult) string {
	resultWidth := len("Result")
	for _, r := range results {
		resultWidth = max(resultWidth, lipgloss.Width(r.Result))
	}

	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Result", Width: resultWidth},
		{Title: "Moves", Width: 6},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			"#" + strconv.Itoa(r.Round),
			r.Result,
			strconv.Itoa(r.Moves),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is focused in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header line plus its bottom border.
	t.SetHeight(len(rows) + 2)

	return t.View()
}

// Tally counts wins per result text, e.g. "Player 1 won" -> 2.
func Tally(results []core.RoundResult) map[string]int {
	tally := make(map[string]int, 3)
	for _, r := range results {
		tally[r.Result]++
	}
	return tally
}
