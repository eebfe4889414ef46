package game

import (
	"fmt"

	"github.com/lox/shortdeck/poker"
)

// Player is one seat in a hand: a chip stack, the chips committed this
// round and this hand, hole cards and a folded flag. Its action
// methods mutate only the player's own fields and the shared pot, and
// return a descriptor of what happened.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards []poker.Card
	Folded    bool
	Bet       int // chips committed in the current betting round
	TotalBet  int // chips committed over the whole hand

	pot *Pot
}

// NewPlayers builds n players with uniform chip stacks, seated in
// order. Names follow the "player-N" convention.
func NewPlayers(n, chips int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{
			Seat:  i,
			Name:  fmt.Sprintf("player-%d", i),
			Chips: chips,
		}
	}
	return players
}

// IsActive reports whether the player is still in the hand.
func (p *Player) IsActive() bool {
	return !p.Folded
}

// IsAllIn reports whether the player is in the hand with no chips left.
func (p *Player) IsAllIn() bool {
	return !p.Folded && p.Chips == 0
}

// Call matches the outstanding bet, going all-in if the stack is
// short, and returns the action taken.
func (p *Player) Call(currentBet int) Action {
	paid := p.pay(currentBet - p.Bet)
	return Action{Seat: p.Seat, Kind: Call, Chips: paid}
}

// Fold marks the player inactive, forfeiting their pot contribution.
func (p *Player) Fold() Action {
	p.Folded = true
	return Action{Seat: p.Seat, Kind: Fold}
}

// RaiseTo matches the outstanding bet and raises it by amount, capped
// at the player's stack, and returns the action taken.
func (p *Player) RaiseTo(currentBet, amount int) Action {
	paid := p.pay(currentBet + amount - p.Bet)
	return Action{Seat: p.Seat, Kind: Raise, Chips: paid}
}

// pay moves up to n chips from the stack into the pot and returns the
// amount actually paid.
func (p *Player) pay(n int) int {
	if n > p.Chips {
		n = p.Chips
	}
	if n <= 0 {
		return 0
	}
	p.Chips -= n
	p.Bet += n
	p.TotalBet += n
	p.pot.Add(n)
	return n
}

// Clone deep-copies the player, attaching the copy to pot.
func (p *Player) Clone(pot *Pot) *Player {
	clone := *p
	clone.pot = pot
	clone.HoleCards = make([]poker.Card, len(p.HoleCards))
	copy(clone.HoleCards, p.HoleCards)
	return &clone
}
