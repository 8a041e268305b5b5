// Package config provides YAML-based configuration loading for the game:
// grid geometry, speed progression, persistence paths, and audio defaults.
package config

// Config is the full game configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Paths   PathsConfig   `yaml:"paths"`
	Audio   AudioConfig   `yaml:"audio"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick-rate progression.
type SpeedConfig struct {
	InitialRate int `yaml:"initial_rate"` // Ticks per second at the first tier
	MaxRate     int `yaml:"max_rate"`     // Tick rate cap
}

// ScoringConfig defines how points accumulate and when the speed tier bumps.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
	PointsPerTier int `yaml:"points_per_tier"`
}

// PathsConfig defines where persistent state lives. Paths starting with ~
// are expanded relative to the user's home directory.
type PathsConfig struct {
	Scores  string `yaml:"scores"`  // JSON leaderboard
	History string `yaml:"history"` // SQLite run history; empty disables it
}

// AudioConfig defines the initial audio settings. Volumes are in [0, 1].
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}
