package main

import "testing"

func TestRuntimeConfig(t *testing.T) {
	old := flagSeed
	flagSeed = 42
	t.Cleanup(func() { flagSeed = old })

	tests := []struct {
		name     string
		layoutID string
		want     string
	}{
		{"explicit layout", "mobile-turtle", "mobile-turtle"},
		{"empty falls back to default", "", "turtle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := runtimeConfig(tt.layoutID)
			if cfg.LayoutID != tt.want {
				t.Errorf("LayoutID = %q, want %q", cfg.LayoutID, tt.want)
			}
			if cfg.Seed != 42 {
				t.Errorf("Seed = %d, want 42", cfg.Seed)
			}
			if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
				t.Errorf("screen = %dx%d, want a positive size", cfg.ScreenW, cfg.ScreenH)
			}
		})
	}
}
