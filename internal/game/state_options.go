package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/shortdeck/poker"
)

// DefaultRaiseCap is the fixed-limit per-round raise cap. It applies
// whenever more than two players remain active.
const DefaultRaiseCap = 3

// Option configures a GameState during construction.
type Option func(*stateConfig)

type stateConfig struct {
	rng       *rand.Rand
	deck      *poker.Deck
	rankFloor uint8
	raiseCap  int
	clock     quartz.Clock
	logger    *log.Logger
}

func newStateConfig() *stateConfig {
	return &stateConfig{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		rankFloor: poker.Ten,
		raiseCap:  DefaultRaiseCap,
		clock:     quartz.NewReal(),
		logger:    log.New(io.Discard),
	}
}

// WithRNG sets the RNG used to shuffle the deck. Pass a seeded RNG for
// deterministic hands in tests.
func WithRNG(rng *rand.Rand) Option {
	return func(c *stateConfig) {
		c.rng = rng
	}
}

// WithDeck sets a specific pre-shuffled deck, overriding the RNG.
func WithDeck(deck *poker.Deck) Option {
	return func(c *stateConfig) {
		c.deck = deck
	}
}

// WithRankFloor sets the lowest rank kept in the deck. The default is
// poker.Ten, the 20-card training deck; poker.Six gives a conventional
// six-plus deck.
func WithRankFloor(floor uint8) Option {
	return func(c *stateConfig) {
		c.rankFloor = floor
	}
}

// WithRaiseCap overrides the per-round raise cap.
func WithRaiseCap(cap int) Option {
	return func(c *stateConfig) {
		c.raiseCap = cap
	}
}

// WithClock sets the clock used to timestamp history records. Tests
// use quartz.NewMock.
func WithClock(clock quartz.Clock) Option {
	return func(c *stateConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. The default discards everything so the
// core stays silent under search load.
func WithLogger(logger *log.Logger) Option {
	return func(c *stateConfig) {
		c.logger = logger
	}
}
