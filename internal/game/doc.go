// Package game implements one hand of fixed-limit short-deck hold'em
// as an immutable, branchable game state.
//
// The main type is GameState. Unlike a conventional table engine that
// mutates a hand in place, ApplyAction leaves its receiver untouched
// and returns a brand-new state whose table, players, pot and history
// share no mutable memory with the parent. That makes GameState safe
// for search algorithms that expand many sibling branches from one
// position, including with one goroutine per branch.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	players := game.NewPlayers(2, 10000)
//	s, err := game.NewGameState(players, 50, 100, game.WithRNG(rng))
//	// Expand the tree...
//	for !s.IsTerminal() {
//	    moves := s.LegalActions()
//	    s, err = s.ApplyAction(moves[0])
//	}
//
// # Architecture
//
// GameState composes narrow collaborators:
//   - Table: fixed-order seats, the shared pot and community cards
//   - Dealer: deals hole cards and the flop/turn/river from a short deck
//   - Engine: betting bookkeeping and one-shot pot settlement
//   - poker.Evaluator: showdown hand strength
//
// The betting-round state machine itself (stage progression, the
// raise cap, round-completion detection) lives on GameState.
package game
