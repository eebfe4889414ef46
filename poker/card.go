package poker

import (
	"fmt"
	"math/bits"
)

// Card is a single playing card represented as one set bit in a uint64.
// Layout: [13 clubs][13 diamonds][13 hearts][13 spades], low bits first.
// The bitset layout makes combining cards and extracting per-suit rank
// masks a handful of shifts and ORs.
type Card uint64

// Hand is a set of cards packed into the same uint64 layout as Card.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for deuce through ace)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const ranksPerSuit = 13

// NewCard creates a card from a rank and suit.
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*ranksPerSuit + rank)
}

// Rank returns the rank of the card (0-12), or 255 for the zero Card.
func (c Card) Rank() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c))) % ranksPerSuit
}

// Suit returns the suit of the card (0-3), or 255 for the zero Card.
func (c Card) Suit() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c))) / ranksPerSuit
}

// String returns the two-character representation (e.g. "As", "Th").
func (c Card) String() string {
	const ranks = "23456789TJQKA"
	const suits = "cdhs"

	rank := c.Rank()
	suit := c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(ranks[rank]) + string(suits[suit])
}

// ParseCard parses a two-character string like "As" or "Td" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	rank, err := ParseRank(s[:1])
	if err != nil {
		return 0, err
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseRank parses a single-character rank like "T" or "A".
func ParseRank(s string) (uint8, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid rank string: %q", s)
	}
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return uint8(s[0] - '2'), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
}

// RankString returns the one-character name of a rank.
func RankString(rank uint8) string {
	const ranks = "23456789TJQKA"
	if rank > 12 {
		return "?"
	}
	return string(ranks[rank])
}

// NewHand combines cards into a hand.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand contains the card.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the ranks present for one suit as a 13-bit mask.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16((h >> (suit * ranksPerSuit)) & 0x1FFF)
}

// RankMask returns a 13-bit mask of which ranks are present in any suit.
func (h Hand) RankMask() uint16 {
	var mask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.SuitMask(suit)
	}
	return mask
}

// Cards unpacks the hand into individual cards, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	rest := uint64(h)
	for rest != 0 {
		low := rest & -rest
		cards = append(cards, Card(low))
		rest &^= low
	}
	return cards
}

// String renders the hand as space-separated cards.
func (h Hand) String() string {
	out := ""
	for i, c := range h.Cards() {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
