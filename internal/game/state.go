package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/shortdeck/poker"
)

// GameState is one immutable snapshot of a hand in progress. Deriving
// a successor with ApplyAction never mutates the receiver, so a search
// algorithm can hold a state and expand every legal action from it
// without corrupting sibling branches.
type GameState struct {
	table  *Table
	engine *Engine

	smallBlind int
	bigBlind   int
	raiseCap   int

	history       []Action
	actingPlayer  int
	stage         Stage
	raiseCount    int
	roundComplete bool
	settled       bool

	clock  quartz.Clock
	logger *log.Logger
}

// NewGameState constructs the opening state of a hand: blinds posted,
// two hole cards dealt to every player from the short deck, stage
// pre_flop and seat 0 to act. The supplied players are owned by the
// state from here on.
func NewGameState(players []*Player, smallBlind, bigBlind int, opts ...Option) (*GameState, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidConfig, len(players))
	}
	if smallBlind <= 0 || bigBlind <= 0 {
		return nil, fmt.Errorf("%w: blinds must be positive (%d/%d)", ErrInvalidConfig, smallBlind, bigBlind)
	}
	if bigBlind < smallBlind {
		return nil, fmt.Errorf("%w: big blind %d below small blind %d", ErrInvalidConfig, bigBlind, smallBlind)
	}

	cfg := newStateConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	deck := cfg.deck
	if deck == nil {
		deck = poker.NewShortDeck(cfg.rng, cfg.rankFloor)
	}

	table := NewTable(players, NewDealer(deck))
	engine := NewEngine(table, smallBlind, bigBlind, poker.NewEvaluator(cfg.rankFloor), cfg.logger)
	engine.PostBlinds()
	table.Dealer.DealHole(players)

	return &GameState{
		table:      table,
		engine:     engine,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		raiseCap:   cfg.raiseCap,
		stage:      PreFlop,
		clock:      cfg.clock,
		logger:     cfg.logger,
	}, nil
}

// ApplyAction derives the successor state for one action. The receiver
// is left entirely untouched: the whole table graph is cloned before
// anything is applied. Illegal moves return an error and no state.
//
// Asking a folded player for anything but None, or an active player
// for None, bypasses LegalActions and is a caller bug; both panic.
func (s *GameState) ApplyAction(m Move) (*GameState, error) {
	if s.IsTerminal() {
		return nil, fmt.Errorf("%w: hand is over", ErrTerminalStage)
	}

	ns := s.clone()
	actor := ns.table.Seat(ns.actingPlayer)

	var act Action
	switch m.Kind {
	case None:
		if actor.IsActive() {
			panic(fmt.Sprintf("game: active player %d cannot pass", actor.Seat))
		}
		act = Action{Seat: actor.Seat, Kind: None}

	case Fold:
		ns.mustBeActive(actor)
		act = actor.Fold()

	case Call:
		ns.mustBeActive(actor)
		act = actor.Call(ns.table.CurrentBet())

	case Raise:
		ns.mustBeActive(actor)
		if m.Chips <= 0 {
			return nil, ErrMissingRaiseAmount
		}
		// The cap is checked before the raise is recorded, so a
		// rejected raise leaves no trace anywhere.
		if ns.raiseCount >= ns.raiseCap && ns.engine.ActivePlayers() > 2 {
			return nil, fmt.Errorf("%w: %d raises this round", ErrRaiseCapReached, ns.raiseCount)
		}
		act = actor.RaiseTo(ns.table.CurrentBet(), m.Chips)
		ns.raiseCount++

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, m.Kind)
	}

	act.Stage = ns.stage
	act.At = ns.clock.Now()
	ns.history = append(ns.history, act)

	// Seat rotation. Wrapping back to seat 0 means every seat has
	// acted at least once this round.
	ns.actingPlayer++
	if ns.actingPlayer >= len(ns.table.Players) {
		ns.actingPlayer = 0
		ns.roundComplete = true
	}

	if ns.engine.PlayersWithMoves() == 0 {
		ns.stage = Terminal
	} else if ns.roundComplete && !ns.engine.MoreBettingNeeded() {
		if err := ns.advanceStage(); err != nil {
			return nil, err
		}
	}

	if ns.IsTerminal() && !ns.settled {
		ns.engine.Settle()
		ns.settled = true
	}
	return ns, nil
}

func (s *GameState) mustBeActive(p *Player) {
	if !p.IsActive() {
		panic(fmt.Sprintf("game: folded player %d cannot act", p.Seat))
	}
}

// advanceStage moves the hand to the next betting stage, dealing the
// community cards the stage calls for and resetting the per-round
// raise and completion tracking.
func (s *GameState) advanceStage() error {
	switch s.stage {
	case PreFlop:
		s.stage = Flop
		s.table.Dealer.DealFlop(s.table)
	case Flop:
		s.stage = Turn
		s.table.Dealer.DealTurn(s.table)
	case Turn:
		s.stage = River
		s.table.Dealer.DealRiver(s.table)
	case River:
		s.stage = ShowDown
	default:
		return fmt.Errorf("%w: %s", ErrTerminalStage, s.stage)
	}

	s.raiseCount = 0
	s.roundComplete = false
	s.engine.ResetRoundBets()
	s.logger.Debug("advanced stage", "stage", s.stage, "pot", s.table.Pot.Total())
	return nil
}

// LegalActions returns the moves available to the acting player, in a
// stable order. A folded player's only move is the None pass. Raises
// are sized by stage per the fixed-limit convention (small blind on
// pre_flop and flop, big blind on turn and river) and disappear once
// the round's raises hit the cap, unless exactly two players remain
// active.
func (s *GameState) LegalActions() []Move {
	if s.IsTerminal() {
		return nil
	}

	actor := s.table.Seat(s.actingPlayer)
	if !actor.IsActive() {
		return []Move{{Kind: None}}
	}

	moves := []Move{{Kind: Fold}, {Kind: Call}}

	bet := s.smallBlind
	if s.stage == Turn || s.stage == River {
		bet = s.bigBlind
	}
	capped := s.raiseCount >= s.raiseCap && s.engine.ActivePlayers() > 2
	toCall := s.table.CurrentBet() - actor.Bet
	if !capped && actor.Chips > toCall {
		moves = append(moves, Move{Kind: Raise, Chips: bet})
	}
	return moves
}

// IsTerminal reports whether the hand is over. It is the sole signal a
// search algorithm needs to stop expanding a branch.
func (s *GameState) IsTerminal() bool {
	return s.stage == ShowDown || s.stage == Terminal
}

// Stage returns the current betting stage.
func (s *GameState) Stage() Stage {
	return s.stage
}

// ActingPlayer returns the seat index whose turn it is.
func (s *GameState) ActingPlayer() int {
	return s.actingPlayer
}

// RaiseCount returns the number of raises made in the current round.
func (s *GameState) RaiseCount() int {
	return s.raiseCount
}

// RoundComplete reports whether every seat has acted this round.
func (s *GameState) RoundComplete() bool {
	return s.roundComplete
}

// Pot returns the chips currently in the pot.
func (s *GameState) Pot() int {
	return s.table.Pot.Total()
}

// SmallBlind returns the hand's small blind.
func (s *GameState) SmallBlind() int {
	return s.smallBlind
}

// BigBlind returns the hand's big blind.
func (s *GameState) BigBlind() int {
	return s.bigBlind
}

// Players returns the seated players. The slice and the players belong
// to this state; treat them as read-only.
func (s *GameState) Players() []*Player {
	return s.table.Players
}

// Community returns a copy of the community cards dealt so far.
func (s *GameState) Community() []poker.Card {
	cards := make([]poker.Card, len(s.table.Community))
	copy(cards, s.table.Community)
	return cards
}

// History returns a copy of the chronological action history.
func (s *GameState) History() []Action {
	history := make([]Action, len(s.history))
	copy(history, s.history)
	return history
}

// HoleCards returns each seat's two private cards as a read-only
// snapshot.
func (s *GameState) HoleCards() map[int][]poker.Card {
	cards := make(map[int][]poker.Card, len(s.table.Players))
	for _, p := range s.table.Players {
		hole := make([]poker.Card, len(p.HoleCards))
		copy(hole, p.HoleCards)
		cards[p.Seat] = hole
	}
	return cards
}

// clone duplicates the full state graph. The clock and logger are
// read-only services and are shared; everything mutable is copied.
func (s *GameState) clone() *GameState {
	table := s.table.Clone()
	history := make([]Action, len(s.history), len(s.history)+1)
	copy(history, s.history)

	return &GameState{
		table:         table,
		engine:        s.engine.clone(table),
		smallBlind:    s.smallBlind,
		bigBlind:      s.bigBlind,
		raiseCap:      s.raiseCap,
		history:       history,
		actingPlayer:  s.actingPlayer,
		stage:         s.stage,
		raiseCount:    s.raiseCount,
		roundComplete: s.roundComplete,
		settled:       s.settled,
		clock:         s.clock,
		logger:        s.logger,
	}
}
