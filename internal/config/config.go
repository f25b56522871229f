package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML schema. Absent fields receive defaults in
// ApplyDefaults; minimal validation occurs in Validate().
type Config struct {
	Version int       `yaml:"version"`
	General General   `yaml:"general"`
	API     API       `yaml:"api"`
	Logging Logging   `yaml:"logging"`
	UI      UIOptions `yaml:"ui"`
}

type General struct {
	DataRoot string `yaml:"data_root"`
}

type API struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ListLimit      int    `yaml:"list_limit"`
	UserAgent      string `yaml:"user_agent"`
}

type Logging struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // human|json
}

type UIOptions struct {
	Theme       string `yaml:"theme"` // dark|light
	FuzzySearch bool   `yaml:"fuzzy_search"`
}

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultTimeout   = 15
	DefaultListLimit = 151
)

// Default returns a fully populated config suitable for first run.
func Default() *Config {
	c := &Config{Version: 1}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero-valued fields so a sparse YAML file still
// yields a usable config.
func (c *Config) ApplyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.General.DataRoot == "" {
		c.General.DataRoot = "~/.local/share/pokedex"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = DefaultTimeout
	}
	if c.API.ListLimit == 0 {
		c.API.ListLimit = DefaultListLimit
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = "pokedex"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "human"
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "dark"
	}
}

// Load reads, expands and validates a YAML config file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.ApplyDefaults()
	c.General.DataRoot = ExpandHome(c.General.DataRoot)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// Save writes the config as YAML, creating parent directories.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// DefaultPath returns the conventional config location under the
// user's home directory.
func DefaultPath() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".config", "pokedex", "config.yml"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			return filepath.Join(h, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
