/*
Package config manages TOML config for SentServe surfaces.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/sentserve/sentserve/pkg/index"
)

// Config holds the entire config structure.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig holds index construction options.
type EngineConfig struct {
	MinMatchCount int  `toml:"min_match_count"`
	CaseSensitive bool `toml:"case_sensitive"`
	StrictTokens  bool `toml:"strict_tokens"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxQueryLen  int `toml:"max_query_len"`
	MaxPrefixLen int `toml:"max_prefix_len"`
	MaxResults   int `toml:"max_results"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultRanked   bool `toml:"default_ranked"`
	DefaultPartial  bool `toml:"default_partial"`
	DefaultMinMatch int  `toml:"default_min_match"`
	DefaultLimit    int  `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MinMatchCount: 3,
		},
		Server: ServerConfig{
			MaxQueryLen:  256,
			MaxPrefixLen: 60,
			MaxResults:   64,
		},
		CLI: CliConfig{
			DefaultRanked:   true,
			DefaultMinMatch: 1,
			DefaultLimit:    10,
		},
	}
}

// IndexConfig converts the engine section into index construction
// options.
func (e EngineConfig) IndexConfig() index.Config {
	cfg := index.DefaultConfig()
	if e.MinMatchCount > 0 {
		cfg.MinMatchCount = e.MinMatchCount
	}
	cfg.CaseSensitive = e.CaseSensitive
	cfg.StrictTokens = e.StrictTokens
	return cfg
}

// Load reads a TOML file, falling back to builtin defaults when the
// file is missing or unparseable.
func Load(path string) *Config {
	cfg := DefaultConfig()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		log.Warnf("Config file not found at %s: %v. Using builtin defaults...", path, err)
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("Failed to parse config from %s: %v. Using builtin defaults...", path, err)
		return DefaultConfig()
	}
	return cfg
}

// Init loads config from file or creates a default one if missing.
func Init(path string) *Config {
	if path == "" {
		return DefaultConfig()
	}
	if _, err := os.Stat(path); err != nil {
		cfg := DefaultConfig()
		if saveErr := Save(cfg, path); saveErr != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", path, saveErr)
			return cfg
		}
		log.Debugf("Created default config file at: %s", path)
		return cfg
	}
	return Load(path)
}

// Save writes into a TOML file.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
