package config

import "fmt"

// Preset is a named rule set offered by the --rules flag.
type Preset string

const (
	PresetRelaxed  Preset = "relaxed"  // permanent hints, unlimited reshuffles
	PresetStandard Preset = "standard" // the configured rules
	PresetStrict   Preset = "strict"   // no reshuffle, a deadlock ends the game
)

// Presets lists the known presets.
func Presets() []Preset {
	return []Preset{PresetRelaxed, PresetStandard, PresetStrict}
}

// ParsePreset validates a preset name. The empty string means standard.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetStandard, nil
	case PresetRelaxed, PresetStandard, PresetStrict:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown rules preset %q", s)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetRelaxed:
		cfg.Hints.Permanent = true
		cfg.AutoShuffle.Enabled = true
		cfg.AutoShuffle.Max = 0
	case PresetStrict:
		cfg.Hints.Permanent = false
		cfg.AutoShuffle.Enabled = false
	}
}
