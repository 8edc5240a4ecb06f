// Package config loads the optional .mdfix.toml configuration file.
// Precedence is flags over config file over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFilename is looked up in the root directory when no --config
// path is given.
const DefaultFilename = ".mdfix.toml"

// Config holds file-based settings.
type Config struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Extensions: []string{".md"}}
}

// Load reads a TOML config file. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".md"}
	}
	return cfg, nil
}
