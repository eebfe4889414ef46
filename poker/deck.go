package poker

import (
	"math/rand"
)

// Deck is a pre-shuffled deck with a deal cursor. All randomness is
// consumed up front in the constructor's shuffle, so Clone produces a
// deck that deals the same remaining cards with no shared state. That
// property is what makes decks safe to carry inside branchable game
// states.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a shuffled 52-card deck using the supplied RNG.
func NewDeck(rng *rand.Rand) *Deck {
	return NewShortDeck(rng, Two)
}

// NewShortDeck creates a shuffled deck containing only ranks >= floor.
// A floor of Ten yields the 20-card deck used for training; Six yields
// a conventional 36-card six-plus deck.
func NewShortDeck(rng *rand.Rand, floor uint8) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 4*(ranksPerSuit-int(floor))),
	}

	for suit := uint8(0); suit < 4; suit++ {
		for rank := floor; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	d.shuffle(rng)
	return d
}

func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if too few remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card, or the zero Card if the deck is empty.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Size returns the total number of cards the deck was built with.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Clone returns an independent copy of the deck with the same order
// and cursor position.
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards, next: d.next}
}
