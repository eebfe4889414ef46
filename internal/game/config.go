package game

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/shortdeck/poker"
)

// Config describes a table setup loadable from an HCL file.
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Rules RuleSettings  `hcl:"rules,block"`
}

// TableSettings covers seating and stacks.
type TableSettings struct {
	Seats         int `hcl:"seats"`
	StartingChips int `hcl:"starting_chips,optional"`
}

// RuleSettings covers blinds and the betting structure.
type RuleSettings struct {
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
	RankFloor  string `hcl:"rank_floor,optional"`
	RaiseCap   int    `hcl:"raise_cap,optional"`
}

// DefaultConfig returns the training defaults: heads-up 50/100 on the
// 20-card ten-to-ace deck.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Seats:         2,
			StartingChips: 10000,
		},
		Rules: RuleSettings{
			SmallBlind: 50,
			BigBlind:   100,
			RankFloor:  "T",
			RaiseCap:   DefaultRaiseCap,
		},
	}
}

// LoadConfig loads a table configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the game cannot start
// with.
func (c *Config) Validate() error {
	if c.Table.Seats < 2 {
		return fmt.Errorf("%w: need at least 2 seats, got %d", ErrInvalidConfig, c.Table.Seats)
	}
	if c.Table.StartingChips <= 0 {
		return fmt.Errorf("%w: starting chips must be positive, got %d", ErrInvalidConfig, c.Table.StartingChips)
	}
	if c.Rules.SmallBlind <= 0 || c.Rules.BigBlind <= 0 {
		return fmt.Errorf("%w: blinds must be positive (%d/%d)", ErrInvalidConfig, c.Rules.SmallBlind, c.Rules.BigBlind)
	}
	if c.Rules.BigBlind < c.Rules.SmallBlind {
		return fmt.Errorf("%w: big blind %d below small blind %d", ErrInvalidConfig, c.Rules.BigBlind, c.Rules.SmallBlind)
	}
	if c.Rules.RaiseCap <= 0 {
		return fmt.Errorf("%w: raise cap must be positive, got %d", ErrInvalidConfig, c.Rules.RaiseCap)
	}
	if _, err := poker.ParseRank(c.Rules.RankFloor); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// NewGameStateFromConfig constructs the opening state of a hand from a
// table configuration.
func NewGameStateFromConfig(cfg *Config, rng *rand.Rand, opts ...Option) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	floor, err := poker.ParseRank(cfg.Rules.RankFloor)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	players := NewPlayers(cfg.Table.Seats, cfg.Table.StartingChips)
	opts = append([]Option{
		WithRNG(rng),
		WithRankFloor(floor),
		WithRaiseCap(cfg.Rules.RaiseCap),
	}, opts...)
	return NewGameState(players, cfg.Rules.SmallBlind, cfg.Rules.BigBlind, opts...)
}
