package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.termsnake/config.yaml -> ./configs/termsnake.yaml -> embedded default
//
// Files are unmarshaled over the defaults, so a partial file only overrides
// the keys it sets.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// A custom path must exist and parse; the fallbacks are best-effort.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "termsnake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultConfig()
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termsnake", "config.yaml")
}

// ExpandHome resolves a leading ~ in a path against the user's home
// directory. Paths without ~ pass through unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
