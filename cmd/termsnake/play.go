package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yurikov/termsnake/internal/audio"
	"github.com/yurikov/termsnake/internal/config"
	"github.com/yurikov/termsnake/internal/core"
	"github.com/yurikov/termsnake/internal/game"
	"github.com/yurikov/termsnake/internal/platform/tui"
	"github.com/yurikov/termsnake/internal/scores"
	"github.com/yurikov/termsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD   - Steer
  Space         - Pause / restart after game over
  H             - High scores (after game over)
  M             - Audio settings
  Esc/Q/Ctrl+C  - Quit

On the audio settings panel:
  S             - Toggle sound
  Up/Down       - Music volume
  Shift+Up/Down - Effects volume

Examples:
  termsnake play
  termsnake play --seed 42
  termsnake play --config ./my-config.yaml`,
	Run: runPlay,
}

// loadSetup resolves config and flag overrides into the pieces every
// command shares: the parsed config and the final persistence paths.
func loadSetup() (config.Config, string, string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	scoresPath := cfg.Paths.Scores
	if flagScoresPath != "" {
		scoresPath = flagScoresPath
	}
	dbPath := cfg.Paths.History
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	return cfg, config.ExpandHome(scoresPath), config.ExpandHome(dbPath)
}

// gameOptions maps the config onto the game parameters.
func gameOptions(cfg config.Config) game.Options {
	return game.Options{
		GridW:        cfg.Grid.Width,
		GridH:        cfg.Grid.Height,
		InitialRate:  cfg.Speed.InitialRate,
		MaxRate:      cfg.Speed.MaxRate,
		ScorePerFood: cfg.Scoring.PointsPerFood,
		TierStep:     cfg.Scoring.PointsPerTier,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, scoresPath, dbPath := loadSetup()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "termsnake"})

	board := scores.New(scoresPath, logger)

	var store *storage.Store
	if dbPath != "" {
		var err error
		store, err = storage.Open(dbPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without history - the game still works
			store = nil
		}
	}

	player := audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.MusicVolume, cfg.Audio.SFXVolume, logger)
	if err := player.Initialize(); err != nil {
		// No device is fine; the audio panel stays functional.
		logger.Warn("audio unavailable", "error", err)
	}

	session := game.NewSession(
		gameOptions(cfg),
		board,
		player,
		storage.NewRecorder(store, logger),
		flagSeed,
	)

	width, height := 80, 24 // Defaults until the first resize message
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	session.SetViewport(width, height)

	runCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	runErr := tui.Run(session, runCfg, flagFPSCap)

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
