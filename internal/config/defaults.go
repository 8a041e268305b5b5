package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// defaults/termsnake.yaml.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 18,
		},
		Speed: SpeedConfig{
			InitialRate: 5,
			MaxRate:     20,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
			PointsPerTier: 30,
		},
		Paths: PathsConfig{
			Scores:  "~/.termsnake/scores.json",
			History: "~/.termsnake/history.db",
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.3,
			SFXVolume:   0.5,
		},
	}
}
