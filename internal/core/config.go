package core

// RuntimeConfig describes the terminal a session runs in.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	Seed     int64  // RNG seed for dealing; 0 means derive from the clock
	LayoutID string // Layout to deal when the session starts
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		LayoutID: "turtle",
	}
}
