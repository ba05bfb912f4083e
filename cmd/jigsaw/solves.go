package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var solvesCmd = &cobra.Command{
	Use:   "solves [difficulty]",
	Short: "Show recorded solves",
	Long: `Display recorded puzzle solves.

Without arguments the most recent solves are shown. With a difficulty
(easy, normal, hard, expert) the best times for that grid are shown.

Examples:
  jigsaw solves
  jigsaw solves hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolves,
}

func runSolves(cmd *cobra.Command, args []string) {
	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var solves []storage.SolveEntry
	header := "Recent Solves"

	if len(args) == 1 {
		preset := config.DifficultyPreset(args[0])
		grid := config.GridForPreset(preset)
		header = fmt.Sprintf("Best Solves - %s (%dx%d)", args[0], grid.Rows, grid.Cols)

		solves, err = store.BestSolves(grid.Rows, grid.Cols, 10)
	} else {
		solves, err = store.RecentSolves(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	// Display solves
	fmt.Println(header)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jigsaw play' to record the first solve!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-6s  %s\n", "Rank", "Grid", "Pieces", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-6s  %s\n", "----", "----", "------", "-----", "----", "----")

	// Print solves
	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%02d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		gridStr := fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		fmt.Printf("  %-4d  %-6s  %-7d  %-6d  %-6s  %s\n", i+1, gridStr, entry.Pieces, entry.Moves, timeStr, dateStr)
	}

	// Show best time for the grid
	if len(args) == 1 {
		grid := config.GridForPreset(config.DifficultyPreset(args[0]))
		best, bestErr := store.BestDuration(grid.Rows, grid.Cols)
		if bestErr == nil && best > 0 {
			fmt.Println()
			fmt.Printf("Best: %02d:%02d\n", best/60, best%60)
		}
	}
}
