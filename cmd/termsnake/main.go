// termsnake is a classic snake game for the terminal.
//
// Usage:
//
//	termsnake               - Play (same as 'termsnake play')
//	termsnake play          - Play the game
//	termsnake scores        - Browse the leaderboard and run history
//	termsnake stats         - Show aggregate run statistics
//	termsnake serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--seed <value>   - RNG seed for reproducible food placement
//	--fps-cap <n>    - Upper bound on the simulation rate
//	--scores <path>  - Leaderboard file (default: ~/.termsnake/scores.json)
//	--db <path>      - Run history database (default: ~/.termsnake/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags. Empty path flags fall back to the config file.
	flagConfig     string
	flagSeed       int64
	flagFPSCap     int
	flagScoresPath string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Classic snake for your terminal",
	Long: `termsnake is a terminal snake game: steer the snake onto food to grow,
speed up every 30 points, and fight for a spot in the top five.

Available commands:
  play     - Play the game (also the default when no command is given)
  scores   - Browse the leaderboard and run history
  stats    - Show aggregate run statistics
  serve    - Start SSH server for remote play

Examples:
  termsnake
  termsnake play --seed 42
  termsnake scores
  termsnake serve --ssh :2222`,
	Run: runPlay, // Bare invocation starts a game
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPSCap, "fps-cap", 0, "Cap the simulation rate (0 = no cap)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to leaderboard file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
