package game

import "errors"

var (
	// ErrInvalidConfig indicates unusable construction parameters such
	// as non-positive blinds or fewer than two players.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrUnknownAction indicates an action kind outside the closed set.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingRaiseAmount indicates a raise with no chip amount.
	ErrMissingRaiseAmount = errors.New("raise requires a chip amount")

	// ErrRaiseCapReached indicates a raise past the per-round cap with
	// more than two players still active.
	ErrRaiseCapReached = errors.New("raise cap reached")

	// ErrTerminalStage indicates a stage advance requested from
	// show_down or terminal. Callers never trigger this legitimately.
	ErrTerminalStage = errors.New("cannot advance from a terminal stage")
)
