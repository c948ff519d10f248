package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user-tunable settings loaded from the JSON config file.
// Zero values fall back to the defaults, so a partial file is fine.
type Config struct {
	Theme    string   `json:"theme"`
	TabWidth int      `json:"tabWidth"`
	Keywords []string `json:"keywords"`
}

func defaultConfig() Config {
	return Config{
		Theme:    "dark",
		TabWidth: 4,
		Keywords: nil, // nil selects editor.DefaultKeywords
	}
}

// defaultConfigPath returns ~/.config/scribe/config.json (per-platform
// via os.UserConfigDir), or "" when no config dir is resolvable.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scribe", "config.json")
}

// loadConfig reads the config file at path. A missing file or empty path
// yields the defaults with no error; a malformed file yields the defaults
// plus the parse error so the caller can warn without refusing to start.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), err
	}
	if cfg.Theme == "" {
		cfg.Theme = "dark"
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	return cfg, nil
}
