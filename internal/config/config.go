// Package config loads compyle settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"compyle/internal/debug"
	"compyle/internal/parser"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the compyle tool.
type Config struct {
	Debug  DebugConfig  `toml:"debug"`
	Parser ParserConfig `toml:"parser"`
	REPL   REPLConfig   `toml:"repl"`
}

type DebugConfig struct {
	// Channels lists the debug channels enabled by default.
	Channels []string `toml:"channels"`
}

type ParserConfig struct {
	// MaxDepth bounds the nesting of binary expressions.
	// Defaults to parser.DefaultMaxDepth
	MaxDepth int `toml:"max_depth"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`

	// HistoryFile keeps REPL input between sessions. A leading ~ is expanded.
	// Defaults to ~/.compyle_history
	HistoryFile string `toml:"history_file"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: parser.DefaultMaxDepth},
		REPL: REPLConfig{
			Prompt:      "compyle> ",
			HistoryFile: "~/.compyle_history",
		},
	}
}

// DefaultPath returns the config file location.
// Uses COMPYLE_CONFIG environment variable if set, otherwise ~/.compyle/config.toml
func DefaultPath() string {
	if path := os.Getenv("COMPYLE_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".compyle", "config.toml")
	}
	return filepath.Join(homeDir, ".compyle", "config.toml")
}

// Load reads the file at path over the defaults. A missing file is not an
// error when optional is set. Unknown keys are rejected.
func Load(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("loading config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	_, err := c.DebugChannels()
	return err
}

// DebugChannels resolves the configured channel names.
func (c *Config) DebugChannels() ([]debug.Channel, error) {
	channels := make([]debug.Channel, 0, len(c.Debug.Channels))
	for _, name := range c.Debug.Channels {
		ch, err := debug.ParseChannel(name)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// HistoryPath returns REPL.HistoryFile with a leading ~ expanded, or "" when
// history is disabled.
func (c *Config) HistoryPath() string {
	path := c.REPL.HistoryFile
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
