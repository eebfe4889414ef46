package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Table.Seats)
	assert.Equal(t, 50, cfg.Rules.SmallBlind)
	assert.Equal(t, 100, cfg.Rules.BigBlind)
	assert.Equal(t, "T", cfg.Rules.RankFloor)
	assert.Equal(t, DefaultRaiseCap, cfg.Rules.RaiseCap)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromHCL(t *testing.T) {
	content := `
table {
  seats          = 3
  starting_chips = 5000
}

rules {
  small_blind = 25
  big_blind   = 50
  rank_floor  = "6"
  raise_cap   = 4
}
`
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Table.Seats)
	assert.Equal(t, 5000, cfg.Table.StartingChips)
	assert.Equal(t, 25, cfg.Rules.SmallBlind)
	assert.Equal(t, 50, cfg.Rules.BigBlind)
	assert.Equal(t, "6", cfg.Rules.RankFloor)
	assert.Equal(t, 4, cfg.Rules.RaiseCap)
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("table {"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one seat", func(c *Config) { c.Table.Seats = 1 }},
		{"no chips", func(c *Config) { c.Table.StartingChips = 0 }},
		{"zero small blind", func(c *Config) { c.Rules.SmallBlind = 0 }},
		{"big blind below small", func(c *Config) { c.Rules.BigBlind = 10 }},
		{"zero raise cap", func(c *Config) { c.Rules.RaiseCap = 0 }},
		{"bad rank floor", func(c *Config) { c.Rules.RankFloor = "X" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewGameStateFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Seats = 3

	s, err := NewGameStateFromConfig(cfg, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	assert.Equal(t, PreFlop, s.Stage())
	assert.Len(t, s.Players(), 3)
	assert.Equal(t, 150, s.Pot())
	assert.Equal(t, 50, s.SmallBlind())
	assert.Equal(t, 100, s.BigBlind())
}

func TestNewGameStateFromConfigInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.BigBlind = 0

	_, err := NewGameStateFromConfig(cfg, rand.New(rand.NewSource(12)))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
