package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"pokedex/internal/config"
)

func handleConfig(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: pokedex config <init|validate|path>")
	}

	path, err := resolveConfigPath(*cfgPath)
	if err != nil {
		return err
	}

	switch fs.Arg(0) {
	case "path":
		fmt.Println(path)
		return nil

	case "init":
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Printf("wrote config to %s\n", path)
		return nil

	case "validate":
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		// Load already validated; surface the resolved essentials.
		fmt.Printf("ok: api=%s limit=%d data_root=%s\n", c.API.BaseURL, c.API.ListLimit, c.General.DataRoot)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand: %s", fs.Arg(0))
	}
}
