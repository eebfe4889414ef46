package poker

import (
	"math/bits"
)

// HandRank encodes the strength of a best-five-card hand. Higher values
// are stronger. The top bits carry the hand category and the low 20
// bits carry up to five tiebreak ranks, most significant first, so two
// ranks compare correctly with plain integer comparison.
type HandRank uint32

// HandCategory enumerates hand categories from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Category returns the hand category this rank belongs to.
func (hr HandRank) Category() HandCategory {
	return HandCategory(hr >> 20)
}

// CompareHands compares two ranks: 1 if a wins, -1 if b wins, 0 on tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Evaluator ranks hands drawn from a deck with a configurable rank
// floor. The floor only affects straights: the ace plays below the
// lowest deck rank (A-2-3-4-5 in a full deck, A-6-7-8-9 in six-plus).
type Evaluator struct {
	floor uint8
}

// NewEvaluator creates an evaluator for decks with the given rank floor.
func NewEvaluator(floor uint8) Evaluator {
	return Evaluator{floor: floor}
}

// Rank evaluates the best five-card hand contained in h. The hand must
// hold between five and seven cards; fewer than five returns zero.
func (e Evaluator) Rank(h Hand) HandRank {
	if h.CountCards() < 5 {
		return 0
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		suitMasks[suit] = h.SuitMask(suit)
		rankMask |= suitMasks[suit]
	}

	// Straight flush: each suit with five or more cards is its own
	// candidate straight.
	var bestFlushSuit = -1
	for suit, mask := range suitMasks {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if high := e.straightHigh(mask); high >= 0 {
			return pack(StraightFlush, uint8(high))
		}
		bestFlushSuit = suit
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		kicker := topRanks(rankMask&^(1<<quad), 1)
		return pack(FourOfAKind, uint8(quad), kicker[0])
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		// A second trip rank counts as the pair of a full house.
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return pack(FullHouse, uint8(trip), uint8(pair))
		}
	}

	if bestFlushSuit >= 0 {
		return pack(Flush, topRanks(suitMasks[bestFlushSuit], 5)...)
	}

	if high := e.straightHigh(rankMask); high >= 0 {
		return pack(Straight, uint8(high))
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		kickers := topRanks(rankMask&^(1<<trip), 2)
		return pack(ThreeOfAKind, append([]uint8{uint8(trip)}, kickers...)...)
	}

	if high := highestRank(pairsMask); high >= 0 {
		if low := highestRank(pairsMask &^ (1 << high)); low >= 0 {
			kicker := topRanks(rankMask&^(1<<high)&^(1<<low), 1)
			return pack(TwoPair, uint8(high), uint8(low), kicker[0])
		}
		kickers := topRanks(rankMask&^(1<<high), 3)
		return pack(Pair, append([]uint8{uint8(high)}, kickers...)...)
	}

	return pack(HighCard, topRanks(rankMask, 5)...)
}

// straightHigh returns the high rank of the best straight in the mask,
// or -1 when none exists. The ace additionally plays as the rank just
// below the deck's floor.
func (e Evaluator) straightHigh(mask uint16) int {
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return bits.Len16(seq) - 1 + 4
	}

	if e.floor+3 < Ace {
		wheel := uint16(0xF)<<e.floor | 1<<Ace
		if mask&wheel == wheel {
			return int(e.floor) + 3
		}
	}
	return -1
}

// highestRank returns the highest set rank in the mask, or -1 when empty.
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topRanks returns the n highest ranks in the mask, descending.
func topRanks(mask uint16, n int) []uint8 {
	ranks := make([]uint8, 0, n)
	for len(ranks) < n {
		if mask == 0 {
			ranks = append(ranks, 0)
			continue
		}
		top := uint8(bits.Len16(mask) - 1)
		ranks = append(ranks, top)
		mask &^= 1 << top
	}
	return ranks
}

// pack folds a category and up to five tiebreak ranks into a HandRank.
func pack(cat HandCategory, tiebreaks ...uint8) HandRank {
	hr := HandRank(cat) << 20
	shift := 16
	for _, tb := range tiebreaks {
		hr |= HandRank(tb) << shift
		shift -= 4
	}
	return hr
}
