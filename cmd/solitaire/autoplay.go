package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/solitaire/internal/clock"
	"github.com/vovakirdan/solitaire/internal/game"
	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/storage"
	"github.com/vovakirdan/solitaire/internal/tile"
)

var (
	flagGames int
	flagSave  bool
)

// thinkTime is the play time charged for every automatic move.
const thinkTime = 2 * time.Second

var autoplayCmd = &cobra.Command{
	Use:   "autoplay [layout]",
	Short: "Play headless games with a simple strategy",
	Long: `Play games without a terminal UI. Each move takes the first matching
pair of free tiles. Deadlocks are handled by the configured rules.
Useful for checking how often a layout and rule set can be cleared.

Examples:
  solitaire autoplay
  solitaire autoplay mobile-turtle --games 100
  solitaire autoplay turtle --seed 42 --rules strict
  solitaire autoplay --games 20 --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Record results in the scores database")
}

func runAutoplay(_ *cobra.Command, args []string) error {
	layoutID := rules.Layout
	if len(args) > 0 {
		layoutID = args[0]
	}
	l, err := layout.Get(layoutID)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autoplay",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	won := 0
	for i := 0; i < max(flagGames, 1); i++ {
		st, err := autoplayGame(l, seed+int64(i), logger)
		if err != nil {
			return err
		}
		if st.Won {
			won++
		}
		logger.Info("game finished",
			"game", i+1,
			"won", st.Won,
			"score", st.Score,
			"tiles_left", st.TilesRemaining,
			"auto_shuffles", st.AutoShuffles,
			"time", st.Elapsed,
		)
		if store != nil {
			if err := store.SaveResult(st); err != nil {
				return err
			}
			if st.Score > 0 {
				if _, err := store.SaveScore(st.LayoutID, st.Score, st.Won, st.Elapsed); err != nil {
					return err
				}
			}
		}
	}

	played := max(flagGames, 1)
	fmt.Printf("%s: won %s of %s games (%.0f%%)\n",
		l.Name, humanize.Comma(int64(won)), humanize.Comma(int64(played)),
		float64(won)/float64(played)*100)
	return nil
}

// autoplayGame plays one game to the end on a manual clock, so pending
// reshuffles fire without waiting in real time.
func autoplayGame(l layout.Layout, seed int64, logger *log.Logger) (game.Stats, error) {
	clk := clock.NewManual(time.Now())
	cfg := rules.Game()

	g := game.New(cfg, game.Options{
		Scheduler: clk,
		Logger:    logger.WithPrefix("game"),
		Seed:      seed,
	})
	defer g.Close()

	if err := g.NewGame(l.ID, l.Positions, tile.PoolFor(l.TileCount())); err != nil {
		return game.Stats{}, err
	}

	for g.Status() == game.StatusPlaying {
		pairs := g.MatchingPairs()
		if len(pairs) > 0 {
			for i := time.Duration(0); i < thinkTime/game.TickInterval; i++ {
				g.Tick()
			}
			g.SelectTile(pairs[0].A)
			g.SelectTile(pairs[0].B)
			continue
		}
		if !g.AutoShufflePending() {
			break
		}
		clk.Advance(cfg.AutoShuffleDelay)
	}

	return g.Stats(), nil
}
