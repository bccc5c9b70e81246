// Package config provides YAML-based rule configuration for solitaire games
// and the presets offered on the command line.
package config

import (
	"time"

	"github.com/vovakirdan/solitaire/internal/autoshuffle"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/game"
)

// Config contains everything a session needs to deal and score games.
type Config struct {
	Layout      string            `yaml:"layout"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Shuffle     ShuffleConfig     `yaml:"shuffle"`
	AutoShuffle AutoShuffleConfig `yaml:"auto_shuffle"`
	Hints       HintsConfig       `yaml:"hints"`
}

// ScoringConfig defines points awarded per match.
type ScoringConfig struct {
	Base               int `yaml:"base"`
	TimeBonusMax       int `yaml:"time_bonus_max"`
	TimeBonusDecaySecs int `yaml:"time_bonus_decay_secs"` // Seconds of play that cost one bonus point
	ComboStep          int `yaml:"combo_step"`
}

// ShuffleConfig defines how hard the shuffler tries before forcing a pair.
type ShuffleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// AutoShuffleConfig defines the reshuffle of deadlocked boards.
type AutoShuffleConfig struct {
	Enabled bool `yaml:"enabled"`
	DelayMS int  `yaml:"delay_ms"` // Clamped to 1000..10000
	Max     int  `yaml:"max"`      // 0 = unlimited
}

// HintsConfig defines hint behaviour.
type HintsConfig struct {
	Permanent bool `yaml:"permanent"`
}

// Normalize clamps out-of-range values and fills zero values with defaults.
func (c *Config) Normalize() {
	def := Default()

	if c.Layout == "" {
		c.Layout = def.Layout
	}
	if c.Scoring.Base <= 0 {
		c.Scoring.Base = def.Scoring.Base
	}
	if c.Scoring.TimeBonusMax < 0 {
		c.Scoring.TimeBonusMax = 0
	}
	if c.Scoring.TimeBonusDecaySecs <= 0 {
		c.Scoring.TimeBonusDecaySecs = def.Scoring.TimeBonusDecaySecs
	}
	if c.Scoring.ComboStep < 0 {
		c.Scoring.ComboStep = 0
	}
	if c.Shuffle.MaxAttempts <= 0 {
		c.Shuffle.MaxAttempts = def.Shuffle.MaxAttempts
	}
	if c.AutoShuffle.DelayMS == 0 {
		c.AutoShuffle.DelayMS = def.AutoShuffle.DelayMS
	}
	c.AutoShuffle.DelayMS = core.Clamp(c.AutoShuffle.DelayMS,
		int(autoshuffle.MinDelay/time.Millisecond),
		int(autoshuffle.MaxDelay/time.Millisecond))
	if c.AutoShuffle.Max < 0 {
		c.AutoShuffle.Max = 0
	}
}

// Game converts the configuration into the rules a game is played with.
func (c Config) Game() game.Config {
	return game.Config{
		BaseScore:        c.Scoring.Base,
		TimeBonusMax:     c.Scoring.TimeBonusMax,
		TimeBonusDecay:   time.Duration(c.Scoring.TimeBonusDecaySecs) * time.Second,
		ComboStep:        c.Scoring.ComboStep,
		AutoShuffle:      c.AutoShuffle.Enabled,
		AutoShuffleDelay: time.Duration(c.AutoShuffle.DelayMS) * time.Millisecond,
		MaxAutoShuffles:  c.AutoShuffle.Max,
		ShuffleAttempts:  c.Shuffle.MaxAttempts,
		PermanentHints:   c.Hints.Permanent,
	}
}
