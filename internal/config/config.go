// Package config loads the optional YAML run configuration for syngraph.
//
// Example:
//
//	max_paralog: 2
//	log_level: info
//	log_file: logs/syngraph.log
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/olehluchkiv/syngraph/internal/synteny"
)

// Config holds run settings that can come from a file instead of flags.
type Config struct {
	// MaxParalog is the per-species gene limit used by mso_p.
	MaxParalog int `yaml:"max_paralog"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives a copy of every log line.
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		MaxParalog: synteny.DefaultMaxParalog,
		LogLevel:   "warn",
	}
}

// Load reads path on top of Default. Fields absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MaxParalog < 0 {
		return cfg, fmt.Errorf("parse %s: max_paralog must be zero or greater, got %d", path, cfg.MaxParalog)
	}
	return cfg, nil
}
