// solitaire is Mahjong solitaire for the terminal.
//
// Usage:
//
//	solitaire                    - Pick a layout from the menu and play
//	solitaire layouts            - List available layouts
//	solitaire play [layout]      - Play a layout directly
//	solitaire autoplay [layout]  - Let the computer play headless games
//	solitaire scores [layout]    - Show high scores and statistics
//	solitaire serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible deals
//	--db <path>         - Set database path (default: ~/.solitaire/scores.db)
//	--config <path>     - Load rules from a YAML file
//	--rules <preset>    - Rules preset: relaxed, standard, strict
//	--layout-dir <dir>  - Load extra layouts from a directory
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/solitaire/internal/config"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/platform/tui"
	"github.com/vovakirdan/solitaire/internal/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagRules     string
	flagLayoutDir string
	flagDebug     bool

	// rules is the resolved rule set, filled in before any command runs.
	rules config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Mahjong solitaire in your terminal",
	Long: `Mahjong solitaire: clear the board by matching pairs of free tiles.

A tile is free when nothing lies on top of it and its left or right side
is open. Seasons match any season and flowers match any flower.

Available commands:
  layouts  - Show all available layouts
  play     - Play a layout directly
  autoplay - Play headless games with a simple strategy
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play

Examples:
  solitaire
  solitaire play turtle
  solitaire play mobile-turtle --rules relaxed
  solitaire serve --ssh :2222
  solitaire scores turtle`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSession,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solitaire/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules preset: relaxed, standard, strict")
	rootCmd.PersistentFlags().StringVar(&flagLayoutDir, "layout-dir", "", "Directory with extra layout YAML files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.solitaire/debug.log")

	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads extra layouts and resolves the rules shared by all commands.
func setup(_ *cobra.Command, _ []string) error {
	if flagLayoutDir != "" {
		loaded, skipped, err := layout.RegisterDir(flagLayoutDir)
		if err != nil {
			return err
		}
		for _, skipErr := range skipped {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", skipErr)
		}
		if flagDebug {
			fmt.Fprintf(os.Stderr, "Loaded %d layouts from %s\n", len(loaded), flagLayoutDir)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagRules)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	cfg.Normalize()
	rules = cfg
	return nil
}

// newLogger returns the logger for terminal sessions. The screen belongs to
// the UI, so logs go to a file and only with --debug.
func newLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	path := filepath.Join(home, ".solitaire", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig(layoutID string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	if layoutID != "" {
		cfg.LayoutID = layoutID
	}
	return cfg
}

func runSession(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	logger, closeLog := newLogger()
	defer closeLog()

	return tui.RunSession(store, rules, runtimeConfig(rules.Layout), logger)
}
