package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yurikov/termsnake/internal/platform/tui"
	"github.com/yurikov/termsnake/internal/scores"
	"github.com/yurikov/termsnake/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the leaderboard and run history",
	Long: `Open the interactive score browser: the ranked top five, the best
runs from the history database, and the most recent runs.

With --plain, print the leaderboard to stdout instead.

Examples:
  termsnake scores
  termsnake scores --plain`,
	Run: runScoresCmd,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the leaderboard instead of the interactive browser")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	_, scoresPath, dbPath := loadSetup()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "termsnake"})
	board := scores.New(scoresPath, logger)

	if flagPlain {
		printLeaderboard(board)
		return
	}

	var store *storage.Store
	if dbPath != "" {
		var err error
		store, err = storage.Open(dbPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(board, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running score browser: %v\n", err)
		os.Exit(1)
	}
}

func printLeaderboard(board *scores.Board) {
	top := board.Top(scores.MaxEntries)

	fmt.Println("High Scores")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termsnake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-14s  %s\n", "Rank", "Score", "Name", "Date")
	fmt.Printf("  %-4s  %-8s  %-14s  %s\n", "----", "-----", "----", "----")
	for i, e := range top {
		fmt.Printf("  %-4d  %-8d  %-14s  %s\n", i+1, e.Score, e.Name, e.Date)
	}
}
