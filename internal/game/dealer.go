package game

import (
	"github.com/lox/shortdeck/poker"
)

// Dealer deals hole and community cards from a short deck. The deck is
// pre-shuffled at construction, so cloned dealers continue dealing the
// same cards without sharing state.
type Dealer struct {
	deck *poker.Deck
}

// NewDealer creates a dealer for the given deck.
func NewDealer(deck *poker.Deck) *Dealer {
	return &Dealer{deck: deck}
}

// DealHole deals two private cards to every player.
func (d *Dealer) DealHole(players []*Player) {
	for _, p := range players {
		p.HoleCards = append(p.HoleCards[:0], d.deck.Deal(2)...)
	}
}

// DealFlop deals three community cards to the table.
func (d *Dealer) DealFlop(t *Table) {
	t.Community = append(t.Community, d.deck.Deal(3)...)
}

// DealTurn deals one community card to the table.
func (d *Dealer) DealTurn(t *Table) {
	t.Community = append(t.Community, d.deck.DealOne())
}

// DealRiver deals one community card to the table.
func (d *Dealer) DealRiver(t *Table) {
	t.Community = append(t.Community, d.deck.DealOne())
}

// RunOut completes the board to five cards. Used when settlement
// happens before the river with more than one player still in.
func (d *Dealer) RunOut(t *Table) {
	for len(t.Community) < 5 {
		t.Community = append(t.Community, d.deck.DealOne())
	}
}

// Clone returns an independent copy of the dealer and its deck.
func (d *Dealer) Clone() *Dealer {
	return &Dealer{deck: d.deck.Clone()}
}
