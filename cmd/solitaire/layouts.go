package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/solitaire/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List all available layouts",
	Long:  `Shows the built-in layouts and any loaded with --layout-dir.`,
	Run:   runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := layout.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Tiles", "Name")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "----")

	for _, l := range layouts {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, l.ID, l.Tiles, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'solitaire play <id>' to play a layout.")
}
