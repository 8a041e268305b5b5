package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yurikov/termsnake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate run statistics",
	Long: `Print totals over the run history database: games played, best and
average score, and total time played.

Examples:
  termsnake stats
  termsnake stats --db ./history.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	_, _, dbPath := loadSetup()

	if dbPath == "" {
		fmt.Fprintln(os.Stderr, "Run history is disabled; set paths.history in the config or pass --db.")
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.RunStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statistics: %v\n", err)
		os.Exit(1)
	}

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("Games played:  %d\n", stats.Runs)
	fmt.Printf("Best score:    %d\n", stats.BestScore)
	fmt.Printf("Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("Time played:   %s\n", stats.TotalPlay)
}
