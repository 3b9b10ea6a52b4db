package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/connect4/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		column int
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, 0, false},
		{"a", runeKey('a'), core.ActionLeft, 0, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0, false},
		{"d", runeKey('d'), core.ActionRight, 0, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionDrop, 0, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionDrop, 0, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop, 0, false},
		{"1", runeKey('1'), core.ActionColumn, 0, false},
		{"7", runeKey('7'), core.ActionColumn, 6, false},
		{"9", runeKey('9'), core.ActionColumn, 8, false},
		{"r", runeKey('r'), core.ActionRestart, 0, false},
		{"p", runeKey('p'), core.ActionPause, 0, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, 0, false},
		{"q", runeKey('q'), core.ActionQuit, 0, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0, true},
		{"0", runeKey('0'), core.ActionNone, 0, false},
		{"x", runeKey('x'), core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, column, quit := km.MapKey(tt.msg)
			if action != tt.action || column != tt.column || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %d, %v), want (%v, %d, %v)",
					tt.msg.String(), action, column, quit, tt.action, tt.column, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('3'), &frame) {
		t.Fatal("3 reported as quit")
	}
	if !frame.Has(core.ActionColumn) || frame.Column != 2 {
		t.Errorf("frame = %+v, want column 2", frame)
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if !frame.Has(core.ActionLeft) {
		t.Error("left not recorded")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
