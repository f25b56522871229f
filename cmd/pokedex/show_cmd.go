package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"pokedex/internal/api"
	apperrors "pokedex/internal/errors"
	"pokedex/internal/pokedex"
	"pokedex/internal/state"
)

func handleShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config file")
	asJSON := fs.Bool("json", false, "Print the payload as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: pokedex show <name|id>")
	}

	path, err := resolveConfigPath(*cfgPath)
	if err != nil {
		return err
	}
	c, err := loadOrInitConfig(path)
	if err != nil {
		return err
	}

	client := api.New(c.API)
	d, err := client.GetPokemon(ctx, fs.Arg(0))
	if err != nil {
		return apperrors.Network(err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	fmt.Print(pokedex.ShareText(d))
	if d.BaseExperience > 0 {
		fmt.Printf("Base XP: %d\n", d.BaseExperience)
	}
	if d.ArtworkURL != "" {
		fmt.Printf("Artwork: %s\n", d.ArtworkURL)
	}

	// Best effort: mark the favorite star the way the TUI would.
	if st, err := state.Open(c); err == nil {
		if fav, err := st.IsFavorite(d.ID); err == nil && fav {
			fmt.Println("★ Favorite")
		}
		_ = st.Close()
	}
	return nil
}
