// Package config loads the optional .lcirc.yaml file that customizes
// include search paths, the REPL prompt, and the history store
// location (SPEC_FULL.md §6 EXTERNAL INTERFACES — additions).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the current
// directory before falling back to $LCI_CONFIG.
const DefaultFileName = ".lcirc.yaml"

// EnvOverride names the environment variable consulted when no
// .lcirc.yaml exists in the current directory.
const EnvOverride = "LCI_CONFIG"

// Config is the decoded shape of .lcirc.yaml. Every field is optional;
// a zero Config behaves exactly as if no config file existed.
type Config struct {
	// IncludePaths are searched, in order, after the current directory
	// when resolving an #include base-name to a .lambda file.
	IncludePaths []string `yaml:"include_paths,omitempty"`

	// Prompt overrides the default ">>> " REPL prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// HistoryFile overrides the default REPL history database path.
	HistoryFile string `yaml:"history_file,omitempty"`
}

// Load resolves and parses the config file, in the order documented on
// EnvOverride: ./.lcirc.yaml, then $LCI_CONFIG, then no config at all.
// A missing file in either location is not an error: Load returns a
// zero Config. A present-but-malformed file is, since it is the one
// startup condition SPEC_FULL.md §6 treats as fatal.
func Load() (Config, error) {
	path := DefaultFileName
	if _, err := os.Stat(path); err != nil {
		if env := os.Getenv(EnvOverride); env != "" {
			path = env
		} else {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
