// Package config loads application configuration from a YAML file,
// environment variables, and command-line flags, in increasing order of
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "ENUMERATE_"

// Config holds everything the application reads from its environment.
type Config struct {
	DBPath         string   `koanf:"db_path"`
	ReposDir       string   `koanf:"repos_dir"`
	Sources        []string `koanf:"sources"`
	NewCardsPerDay int      `koanf:"new_cards_per_day"`
}

// DefaultDataDir is where the database and cloned deck repositories live
// unless configured otherwise.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".enumerate"
	}
	return filepath.Join(home, ".enumerate")
}

// DefaultConfigPath is the YAML file consulted when --config is not set.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load merges defaults, the YAML config file, ENUMERATE_* environment
// variables, and flags. A missing config file is fine; a malformed one
// is an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	dataDir := DefaultDataDir()
	defaults := map[string]any{
		"db_path":           filepath.Join(dataDir, "enumerate.db"),
		"repos_dir":         filepath.Join(dataDir, "repos"),
		"sources":           []string{},
		"new_cards_per_day": 15,
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
