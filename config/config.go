// Package config loads the optional graveyard.yaml run-configuration file:
// where to look for imported libraries, which driver mode to default to,
// and the entry file to run when none is given on the command line.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional name config.Load searches for in the
// current working directory.
const FileName = "graveyard.yaml"

// Config is the shape of graveyard.yaml. Every field is optional; Load
// fills in Defaults() for anything the file omits.
type Config struct {
	// Mode is the default CLI driver mode (S, T, P, E, or M) used when
	// none is given on the command line.
	Mode string `yaml:"mode"`
	// Entry is the source file run when the CLI is invoked with no file
	// argument; when it is empty as well, the CLI starts the REPL.
	Entry string `yaml:"entry"`
	// LibraryPaths is read from the file's library_paths list. Library
	// import resolution does not consult it: an `@path;` import is read
	// from path plus the source extension, exactly as written.
	LibraryPaths []string `yaml:"library_paths"`
	// Prompt overrides the REPL's prompt string.
	Prompt string `yaml:"prompt"`
}

// Defaults returns the configuration used when graveyard.yaml is absent.
func Defaults() Config {
	return Config{Mode: "E", Prompt: "graveyard >>> "}
}

// Load reads and parses path. A missing file is not an error: it returns
// Defaults() unchanged so callers can unconditionally call Load before
// looking at the command line.
func Load(path string) (Config, error) {
	cfg := Defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Mode == "" {
		cfg.Mode = "E"
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "graveyard >>> "
	}
	return cfg, nil
}
