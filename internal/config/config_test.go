package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  base: 20\nhints:\n  permanent: true\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Scoring.Base != 20 || !cfg.Hints.Permanent {
		t.Errorf("overridden values not applied: %+v", cfg)
	}
	if cfg.Scoring.ComboStep != 5 || cfg.Layout != "turtle" {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(Config) bool
	}{
		{"delay too short", Config{AutoShuffle: AutoShuffleConfig{DelayMS: 10}},
			func(c Config) bool { return c.AutoShuffle.DelayMS == 1000 }},
		{"delay too long", Config{AutoShuffle: AutoShuffleConfig{DelayMS: 60000}},
			func(c Config) bool { return c.AutoShuffle.DelayMS == 10000 }},
		{"delay unset", Config{},
			func(c Config) bool { return c.AutoShuffle.DelayMS == 3000 }},
		{"negative combo", Config{Scoring: ScoringConfig{ComboStep: -3}},
			func(c Config) bool { return c.Scoring.ComboStep == 0 }},
		{"zero attempts", Config{},
			func(c Config) bool { return c.Shuffle.MaxAttempts == 10 }},
		{"negative max", Config{AutoShuffle: AutoShuffleConfig{Max: -1}},
			func(c Config) bool { return c.AutoShuffle.Max == 0 }},
		{"layout kept", Config{Layout: "mobile-turtle"},
			func(c Config) bool { return c.Layout == "mobile-turtle" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.in
			cfg.Normalize()
			if !tc.check(cfg) {
				t.Errorf("Normalize() = %+v", cfg)
			}
		})
	}
}

func TestGameConfig(t *testing.T) {
	cfg := Default()
	cfg.AutoShuffle.DelayMS = 1500
	gc := cfg.Game()

	if gc.AutoShuffleDelay != 1500*time.Millisecond {
		t.Errorf("AutoShuffleDelay = %v, expected 1.5s", gc.AutoShuffleDelay)
	}
	if gc.TimeBonusDecay != 30*time.Second {
		t.Errorf("TimeBonusDecay = %v, expected 30s", gc.TimeBonusDecay)
	}
	if gc.BaseScore != 10 || gc.ComboStep != 5 || !gc.AutoShuffle {
		t.Errorf("unexpected game config %+v", gc)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("layout: mobile-turtle\nauto_shuffle:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Layout != "mobile-turtle" || cfg.AutoShuffle.Enabled {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scoring: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) should fail", path)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		wantErr   bool
		want      Preset
		permanent bool
		auto      bool
	}{
		{"", false, PresetStandard, false, true},
		{"relaxed", false, PresetRelaxed, true, true},
		{"standard", false, PresetStandard, false, true},
		{"strict", false, PresetStrict, false, false},
		{"impossible", true, "", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePreset(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset() err = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if p != tc.want {
				t.Errorf("ParsePreset() = %q, expected %q", p, tc.want)
			}

			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Hints.Permanent != tc.permanent || cfg.AutoShuffle.Enabled != tc.auto {
				t.Errorf("after %q: permanent=%v auto=%v", p, cfg.Hints.Permanent, cfg.AutoShuffle.Enabled)
			}
		})
	}
}
