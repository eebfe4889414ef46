package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/shortdeck/poker"
)

// Engine is the betting and settlement collaborator. It answers the
// round-progression queries the state machine needs (is more betting
// required, who still has a decision) and distributes the pot once a
// hand ends.
type Engine struct {
	table      *Table
	smallBlind int
	bigBlind   int
	eval       poker.Evaluator
	logger     *log.Logger
}

// NewEngine creates an engine bound to a table.
func NewEngine(table *Table, smallBlind, bigBlind int, eval poker.Evaluator, logger *log.Logger) *Engine {
	return &Engine{
		table:      table,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		eval:       eval,
		logger:     logger,
	}
}

// PostBlinds commits the small blind for seat 0 and the big blind for
// seat 1. Betting order is seating order, so seat 0 opens every round.
func (e *Engine) PostBlinds() {
	e.table.Seat(0).pay(e.smallBlind)
	e.table.Seat(1).pay(e.bigBlind)
}

// ActivePlayers returns the number of players still in the hand.
func (e *Engine) ActivePlayers() int {
	n := 0
	for _, p := range e.table.Players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// PlayersWithMoves returns how many players still have a decision to
// make. A lone remaining player has none, and all-in players cannot
// act, so folding a hand down to one player or betting every stack in
// both report zero.
func (e *Engine) PlayersWithMoves() int {
	if e.ActivePlayers() <= 1 {
		return 0
	}
	n := 0
	for _, p := range e.table.Players {
		if p.IsActive() && !p.IsAllIn() {
			n++
		}
	}
	return n
}

// MoreBettingNeeded reports whether any player who can still act has
// not matched the outstanding bet.
func (e *Engine) MoreBettingNeeded() bool {
	bet := e.table.CurrentBet()
	for _, p := range e.table.Players {
		if p.IsActive() && !p.IsAllIn() && p.Bet != bet {
			return true
		}
	}
	return false
}

// ResetRoundBets zeroes every player's per-round commitment at the
// start of a new betting round.
func (e *Engine) ResetRoundBets() {
	for _, p := range e.table.Players {
		p.Bet = 0
	}
}

// Settle distributes the pot. A lone active player takes it without a
// showdown; otherwise the board is run out to five cards and the
// strongest hand wins, with ties splitting the pot evenly and any odd
// chips going to the earliest seat.
func (e *Engine) Settle() {
	pot := e.table.Pot.Take()
	winners := e.winners()
	if len(winners) == 0 {
		return
	}

	share := pot / len(winners)
	remainder := pot % len(winners)
	for i, p := range winners {
		p.Chips += share
		if i == 0 {
			p.Chips += remainder
		}
	}

	seats := make([]int, len(winners))
	for i, p := range winners {
		seats[i] = p.Seat
	}
	e.logger.Debug("settled pot", "pot", pot, "winners", seats)
}

func (e *Engine) winners() []*Player {
	var active []*Player
	for _, p := range e.table.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	if len(active) <= 1 {
		return active
	}

	e.table.Dealer.RunOut(e.table)
	board := poker.NewHand(e.table.Community...)

	var best poker.HandRank
	var winners []*Player
	for _, p := range active {
		rank := e.eval.Rank(board | poker.NewHand(p.HoleCards...))
		switch cmp := poker.CompareHands(rank, best); {
		case len(winners) == 0 || cmp > 0:
			best = rank
			winners = append(winners[:0], p)
		case cmp == 0:
			winners = append(winners, p)
		}
	}
	return winners
}

// clone rebinds the engine to a cloned table. The evaluator and logger
// are stateless services shared across clones.
func (e *Engine) clone(table *Table) *Engine {
	clone := *e
	clone.table = table
	return &clone
}
