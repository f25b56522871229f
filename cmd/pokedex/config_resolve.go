package main

import (
	"os"

	"pokedex/internal/config"
)

// resolveConfigPath picks the config file location: explicit flag,
// then POKEDEX_CONFIG, then the default under the home directory.
func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("POKEDEX_CONFIG"); env != "" {
		return env, nil
	}
	return config.DefaultPath()
}

// loadOrInitConfig loads the config, writing a default file first if
// none exists yet.
func loadOrInitConfig(path string) (*config.Config, error) {
	c, err := config.Load(path)
	if err == nil {
		return c, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return nil, err
	}
	return config.Load(path)
}
