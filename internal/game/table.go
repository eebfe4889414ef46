package game

import (
	"github.com/lox/shortdeck/poker"
)

// Table owns the seated players in fixed order, the shared pot, the
// dealer and the community cards. A table is exclusively owned by one
// GameState; Clone produces a copy sharing no mutable memory.
type Table struct {
	Players   []*Player
	Pot       *Pot
	Dealer    *Dealer
	Community []poker.Card
}

// NewTable seats the players around a fresh pot and dealer. Every
// player is wired to the same pot reference.
func NewTable(players []*Player, dealer *Dealer) *Table {
	pot := &Pot{}
	for _, p := range players {
		p.pot = pot
	}
	return &Table{
		Players: players,
		Pot:     pot,
		Dealer:  dealer,
	}
}

// Seat returns the player at seat i.
func (t *Table) Seat(i int) *Player {
	return t.Players[i]
}

// CurrentBet returns the outstanding bet for the round: the largest
// per-round commitment at the table.
func (t *Table) CurrentBet() int {
	bet := 0
	for _, p := range t.Players {
		if p.Bet > bet {
			bet = p.Bet
		}
	}
	return bet
}

// Clone deep-copies the table graph: pot, dealer, every player and the
// community cards.
func (t *Table) Clone() *Table {
	pot := t.Pot.Clone()
	players := make([]*Player, len(t.Players))
	for i, p := range t.Players {
		players[i] = p.Clone(pot)
	}
	community := make([]poker.Card, len(t.Community))
	copy(community, t.Community)
	return &Table{
		Players:   players,
		Pot:       pot,
		Dealer:    t.Dealer.Clone(),
		Community: community,
	}
}
