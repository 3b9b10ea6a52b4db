// Package core provides the Connect Four game engine: board state, move
// legality, gravity drops and win/tie detection.
// This package is UI-agnostic and deterministic.
package core

import "errors"

// Player identifies who occupies a cell. The zero value is an empty cell.
type Player uint8

const (
	Empty Player = iota
	Player1
	Player2
)

// Other returns the opponent of p. Empty has no opponent and maps to itself.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// Valid reports whether p is one of the two players.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Empty"
	}
}

// Phase is the lifecycle stage of a game.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseWon
	PhaseTied
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseInProgress:
		return "InProgress"
	case PhaseWon:
		return "Won"
	case PhaseTied:
		return "Tied"
	default:
		return "Unknown"
	}
}

// State is the game state. Winner is only set when Phase is PhaseWon.
type State struct {
	Phase  Phase
	Winner Player
}

// IsTerminal reports whether the game has ended.
func (s State) IsTerminal() bool {
	return s.Phase == PhaseWon || s.Phase == PhaseTied
}

// String returns e.g. "Won(Player 1)" or "InProgress".
func (s State) String() string {
	if s.Phase == PhaseWon {
		return "Won(" + s.Winner.String() + ")"
	}
	return s.Phase.String()
}

// OutcomeKind classifies the result of an accepted move.
type OutcomeKind uint8

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeWin
	OutcomeTie
)

// String returns the outcome kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "Continue"
	case OutcomeWin:
		return "Win"
	case OutcomeTie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// Outcome describes what an accepted move did to the game.
// Player is the next player to move for OutcomeContinue, the winner for
// OutcomeWin, and Empty for OutcomeTie.
type Outcome struct {
	Kind   OutcomeKind
	Player Player
}

// Continue returns an outcome handing the turn to next.
func Continue(next Player) Outcome { return Outcome{Kind: OutcomeContinue, Player: next} }

// Win returns an outcome won by p.
func Win(p Player) Outcome { return Outcome{Kind: OutcomeWin, Player: p} }

// Tie returns a tie outcome.
func Tie() Outcome { return Outcome{Kind: OutcomeTie} }

// String returns e.g. "Win(Player 2)" or "Tie".
func (o Outcome) String() string {
	if o.Kind == OutcomeTie {
		return o.Kind.String()
	}
	return o.Kind.String() + "(" + o.Player.String() + ")"
}

// MoveResult is returned by a successful ApplyMove.
type MoveResult struct {
	Row     int
	Col     int
	Player  Player // who placed the piece
	Outcome Outcome
}

// Engine errors. All of them leave the engine unchanged.
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidState  = errors.New("game is already over")
	ErrInvalidSize   = errors.New("board dimensions out of range")
)
