package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks invariants that would otherwise surface as confusing
// runtime failures. Call after ApplyDefaults.
func (c *Config) Validate() error {
	if c.General.DataRoot == "" {
		return errors.New("general.data_root required")
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url invalid: %q", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.API.ListLimit <= 0 {
		return fmt.Errorf("api.list_limit must be positive, got %d", c.API.ListLimit)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return fmt.Errorf("logging.format must be human|json, got %q", c.Logging.Format)
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be dark|light, got %q", c.UI.Theme)
	}
	return nil
}
