package main

import (
	"context"
	"flag"
	"fmt"

	"pokedex/internal/pokedex"
	"pokedex/internal/state"
)

func handleFavorites(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("favorites", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config file")
	clear := fs.Bool("clear", false, "Remove all favorites")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := resolveConfigPath(*cfgPath)
	if err != nil {
		return err
	}
	c, err := loadOrInitConfig(path)
	if err != nil {
		return err
	}

	st, err := state.Open(c)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if *clear {
		if err := st.ClearAll(); err != nil {
			return err
		}
		fmt.Println("favorites cleared")
		return nil
	}

	favs, err := st.ListFavorites()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println("no favorites yet")
		return nil
	}
	for _, f := range favs {
		fmt.Printf("#%-4d %s\n", f.ID, pokedex.Title(f.Name))
	}
	return nil
}
