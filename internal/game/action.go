package game

import (
	"fmt"
	"time"
)

// Stage is one betting stage of a hand. Stages only ever advance
// forward through the fixed order below.
type Stage uint8

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	ShowDown
	Terminal
)

func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "pre_flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case ShowDown:
		return "show_down"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// ActionKind is the closed set of things the acting player can do.
// None is the pass recorded for a player who has already folded.
type ActionKind uint8

const (
	None ActionKind = iota
	Fold
	Call
	Raise
)

func (k ActionKind) String() string {
	switch k {
	case None:
		return "none"
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Move is an action choice presented to or made by a caller. Chips is
// the fixed raise size and is zero for every other kind.
type Move struct {
	Kind  ActionKind
	Chips int
}

func (m Move) String() string {
	if m.Kind == Raise {
		return fmt.Sprintf("raise %d", m.Chips)
	}
	return m.Kind.String()
}

// Action is one record in a state's history: who acted, what they did,
// how many chips moved into the pot, and when.
type Action struct {
	Seat  int
	Kind  ActionKind
	Chips int // chips paid into the pot by this action
	Stage Stage
	At    time.Time
}

func (a Action) String() string {
	if a.Chips > 0 {
		return fmt.Sprintf("seat %d %s %d (%s)", a.Seat, a.Kind, a.Chips, a.Stage)
	}
	return fmt.Sprintf("seat %d %s (%s)", a.Seat, a.Kind, a.Stage)
}
