package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, cards ...string) Hand {
	t.Helper()
	var h Hand
	for _, s := range cards {
		c, err := ParseCard(s)
		require.NoError(t, err)
		h.AddCard(c)
	}
	return h
}

func TestRankCategories(t *testing.T) {
	eval := NewEvaluator(Two)

	tests := []struct {
		name     string
		cards    []string
		category HandCategory
	}{
		{"straight flush", []string{"5s", "6s", "7s", "8s", "9s", "Ad", "Kd"}, StraightFlush},
		{"four of a kind", []string{"Ts", "Th", "Td", "Tc", "As", "Kd", "Qh"}, FourOfAKind},
		{"full house", []string{"Ks", "Kh", "Kd", "As", "Ah", "7h", "2d"}, FullHouse},
		{"flush", []string{"2s", "5s", "9s", "Js", "Ks", "Ah", "3d"}, Flush},
		{"straight", []string{"5s", "6h", "7d", "8c", "9s", "Ah", "2d"}, Straight},
		{"three of a kind", []string{"Qs", "Qh", "Qd", "As", "Kh", "7d", "2c"}, ThreeOfAKind},
		{"two pair", []string{"As", "Ah", "Ks", "Kh", "Qd", "7c", "2h"}, TwoPair},
		{"three pairs is two pair", []string{"As", "Ah", "Ks", "Kh", "Qd", "Qc", "7h"}, TwoPair},
		{"pair", []string{"As", "Ah", "Ks", "Qh", "Jd", "7c", "2h"}, Pair},
		{"high card", []string{"As", "Kh", "Qd", "Jc", "9s", "7h", "2d"}, HighCard},
		{"double trips is full house", []string{"As", "Ah", "Ad", "Ks", "Kh", "Kd", "2c"}, FullHouse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.category, eval.Rank(hand(t, tt.cards...)).Category())
		})
	}
}

// With the ten-to-ace training deck, seven cards that cover all five
// ranks always contain the broadway straight; the low categories only
// appear when a rank is missing.
func TestTenFloorCategories(t *testing.T) {
	eval := NewEvaluator(Ten)

	royal := eval.Rank(hand(t, "Ts", "Js", "Qs", "Ks", "As", "Td", "Jd"))
	require.Equal(t, StraightFlush, royal.Category())

	broadway := eval.Rank(hand(t, "Ts", "Jh", "Qd", "Kc", "As", "Td", "Jc"))
	require.Equal(t, Straight, broadway.Category())

	// Four distinct ranks, no straight possible.
	twoPair := eval.Rank(hand(t, "As", "Ah", "Ks", "Kh", "Qd", "Qc", "Jh"))
	require.Equal(t, TwoPair, twoPair.Category())

	require.Equal(t, 1, CompareHands(royal, broadway))
	require.Equal(t, 1, CompareHands(broadway, twoPair))
}

func TestRankOrdering(t *testing.T) {
	eval := NewEvaluator(Two)

	quads := eval.Rank(hand(t, "Ts", "Th", "Td", "Tc", "As", "Kd", "Qh"))
	boat := eval.Rank(hand(t, "Ks", "Kh", "Kd", "As", "Ah", "7h", "2d"))
	flush := eval.Rank(hand(t, "2s", "5s", "9s", "Js", "Ks", "Ah", "3d"))
	straight := eval.Rank(hand(t, "5s", "6h", "7d", "8c", "9s", "Ah", "2d"))
	trips := eval.Rank(hand(t, "Qs", "Qh", "Qd", "As", "Kh", "7d", "2c"))
	twoPair := eval.Rank(hand(t, "As", "Ah", "Ks", "Kh", "Qd", "7c", "2h"))
	pair := eval.Rank(hand(t, "As", "Ah", "Ks", "Qh", "Jd", "7c", "2h"))
	high := eval.Rank(hand(t, "As", "Kh", "Qd", "Jc", "9s", "7h", "2d"))

	descending := []HandRank{quads, boat, flush, straight, trips, twoPair, pair, high}
	for i := 1; i < len(descending); i++ {
		require.Equal(t, 1, CompareHands(descending[i-1], descending[i]),
			"fixture %d should beat fixture %d", i-1, i)
	}
}

func TestRankTiebreaks(t *testing.T) {
	eval := NewEvaluator(Two)

	kingKicker := eval.Rank(hand(t, "As", "Ah", "Ks", "8h", "5d", "3c", "2h"))
	queenKicker := eval.Rank(hand(t, "Ad", "Ac", "Qs", "8s", "5c", "3d", "2s"))
	require.Equal(t, 1, CompareHands(kingKicker, queenKicker))

	nineHigh := eval.Rank(hand(t, "9s", "8h", "7d", "6c", "5s", "2h", "2d"))
	eightHigh := eval.Rank(hand(t, "8s", "7h", "6d", "5c", "4s", "2h", "2d"))
	require.Equal(t, 1, CompareHands(nineHigh, eightHigh))

	acesUp := eval.Rank(hand(t, "As", "Ah", "Ks", "Kh", "Qd", "7c", "2h"))
	kingsUp := eval.Rank(hand(t, "Ks", "Kd", "Qs", "Qh", "Ad", "7d", "2s"))
	require.Equal(t, 1, CompareHands(acesUp, kingsUp))
}

func TestRankTies(t *testing.T) {
	eval := NewEvaluator(Ten)

	// Royal flush on the board: both seats play the board and tie.
	a := eval.Rank(hand(t, "As", "Ks", "Qs", "Js", "Ts", "Th", "Jd"))
	b := eval.Rank(hand(t, "As", "Ks", "Qs", "Js", "Ts", "Qh", "Kd"))
	require.Equal(t, 0, CompareHands(a, b))
}

func TestSixPlusWheelStraight(t *testing.T) {
	eval := NewEvaluator(Six)

	// In six-plus the ace plays below the six: A-6-7-8-9 is a straight.
	wheel := eval.Rank(hand(t, "As", "6h", "7d", "8c", "9s", "Kh", "Qd"))
	require.Equal(t, Straight, wheel.Category())

	// It loses to the six-to-ten straight.
	higher := eval.Rank(hand(t, "6s", "7h", "8d", "9c", "Ts", "Kh", "Qd"))
	require.Equal(t, 1, CompareHands(higher, wheel))
}

func TestFullDeckWheelStraight(t *testing.T) {
	eval := NewEvaluator(Two)

	wheel := eval.Rank(hand(t, "As", "2h", "3d", "4c", "5s", "Kh", "Qd"))
	require.Equal(t, Straight, wheel.Category())

	sixHigh := eval.Rank(hand(t, "2s", "3h", "4d", "5c", "6s", "Kh", "Qd"))
	require.Equal(t, 1, CompareHands(sixHigh, wheel))
}

func TestRankTooFewCards(t *testing.T) {
	eval := NewEvaluator(Ten)
	require.Zero(t, eval.Rank(hand(t, "As", "Kh", "Qd", "Jc")))
}
