package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/platform/tui"
)

var flagResume bool

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Deal a new game on the given layout, or on the configured one.

Controls:
  Arrows/WASD    - Move between free tiles
  Tab/Shift+Tab  - Next/previous free tile
  Enter/Space    - Select tile
  U / R          - Undo / redo
  H              - Hint
  X              - Shuffle
  C              - Cancel pending shuffle
  P              - Pause
  N              - New game
  Q/Ctrl+C       - Quit (unfinished games are saved)

Rules presets:
  relaxed  - Hints stay on, unlimited automatic reshuffles
  standard - Rules from the config file
  strict   - No automatic reshuffle, a deadlock ends the game

Examples:
  solitaire play
  solitaire play turtle --resume
  solitaire play mobile-turtle --rules strict
  solitaire play turtle --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game of the layout")
}

func runPlay(_ *cobra.Command, args []string) error {
	layoutID := rules.Layout
	if len(args) > 0 {
		layoutID = args[0]
	}
	if !layout.Exists(layoutID) {
		return fmt.Errorf("unknown layout %q (run 'solitaire layouts' to see available layouts)", layoutID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger, closeLog := newLogger()
	defer closeLog()

	return tui.Run(runtimeConfig(layoutID), tui.Options{
		Store:  store,
		Rules:  rules,
		Logger: logger,
		Resume: flagResume,
	})
}
