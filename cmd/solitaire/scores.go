package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/solitaire/internal/layout"
	"github.com/vovakirdan/solitaire/internal/platform/tui"
	"github.com/vovakirdan/solitaire/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores for a layout",
	Long: `Display the top 10 scores and the statistics of a layout.
Without a layout, a summary of every layout is shown.

Examples:
  solitaire scores
  solitaire scores turtle
  solitaire scores --browse
  solitaire scores turtle --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores and results of the layout")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		cfg := runtimeConfig("")
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	if len(args) == 0 {
		return printSummary(store)
	}

	l, err := layout.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'solitaire layouts' to see available layouts)", err)
	}

	if flagClear {
		if err := store.ClearScores(l.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", l.Name)
		return nil
	}

	return printScores(store, l)
}

func printScores(store *storage.Store, l layout.Layout) error {
	scores, err := store.TopScores(l.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", l.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'solitaire play %s' to set the first high score!\n", l.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %s\n", "Rank", "Score", "Time", "Won", "When")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %s\n", "----", "-----", "----", "---", "----")

	for i, entry := range scores {
		won := "no"
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8s  %-6s  %-5s  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			formatDuration(entry.Elapsed.Seconds()),
			won,
			humanize.Time(entry.CreatedAt),
		)
	}

	stats, err := store.GetLayoutStats(l.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	printStats(stats)
	return nil
}

func printStats(stats *storage.LayoutStats) {
	fmt.Printf("Played: %d  Won: %d (%.0f%%)  Best: %s  Average: %.0f\n",
		stats.Played,
		stats.Won,
		stats.WinRate()*100,
		humanize.Comma(int64(stats.HighScore)),
		stats.AvgScore,
	)
	if stats.BestTime > 0 {
		fmt.Printf("Fastest win: %s\n", formatDuration(stats.BestTime.Seconds()))
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", humanize.Time(stats.LastPlayed))
	}
}

func printSummary(store *storage.Store) error {
	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-16s  %6s  %4s  %8s  %s\n", "Layout", "Played", "Won", "Best", "Last played")
	fmt.Printf("  %-16s  %6s  %4s  %8s  %s\n", "------", "------", "---", "----", "-----------")

	for _, info := range layout.List() {
		stats, err := store.GetLayoutStats(info.ID)
		if err != nil {
			return err
		}
		last := "never"
		if !stats.LastPlayed.IsZero() {
			last = humanize.Time(stats.LastPlayed)
		}
		fmt.Printf("  %-16s  %6d  %4d  %8s  %s\n",
			info.ID, stats.Played, stats.Won, humanize.Comma(int64(stats.HighScore)), last)
	}
	return nil
}

// formatDuration renders whole seconds as m:ss.
func formatDuration(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
