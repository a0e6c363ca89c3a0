// Package config resolves relay's file paths and display defaults.
//
// Settings come from an optional YAML file (default ~/.relay.yaml);
// anything unset falls back to built-in defaults under the home
// directory. Command-line flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTail is how many trailing entries the confirmation view prints.
const DefaultTail = 3

// Config holds resolved settings for a relay invocation.
type Config struct {
	// Chain is the path to the chain JSON file.
	Chain string `yaml:"chain"`
	// Sessions is the path to the session journal database.
	Sessions string `yaml:"sessions"`
	// Tail is the number of entries shown after an append.
	Tail int `yaml:"tail"`
}

// Default returns the built-in configuration rooted at the user's home
// directory.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return Config{
		Chain:    filepath.Join(home, ".relay-chain.json"),
		Sessions: filepath.Join(home, ".relay-sessions.db"),
		Tail:     DefaultTail,
	}, nil
}

// DefaultPath returns the default config file location (~/.relay.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".relay.yaml"), nil
}

// Load reads the config file at path and merges it over the defaults.
// A missing file yields the defaults unchanged; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Chain != "" {
		cfg.Chain = file.Chain
	}
	if file.Sessions != "" {
		cfg.Sessions = file.Sessions
	}
	if file.Tail > 0 {
		cfg.Tail = file.Tail
	}
	return cfg, nil
}
