package config

import (
	_ "embed"
)

//go:embed defaults/solitaire.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: "turtle",
		Scoring: ScoringConfig{
			Base:               10,
			TimeBonusMax:       10,
			TimeBonusDecaySecs: 30,
			ComboStep:          5,
		},
		Shuffle: ShuffleConfig{
			MaxAttempts: 10,
		},
		AutoShuffle: AutoShuffleConfig{
			Enabled: true,
			DelayMS: 3000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
