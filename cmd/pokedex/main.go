package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// A local .env may supply POKEDEX_CONFIG; absence is fine.
	_ = godotenv.Load()

	if len(args) == 0 {
		usage()
		return errors.New("no command provided")
	}

	cmd := args[0]
	switch cmd {
	case "tui":
		return handleTUI(ctx, args[1:])
	case "show":
		return handleShow(ctx, args[1:])
	case "favorites":
		return handleFavorites(ctx, args[1:])
	case "config":
		return handleConfig(ctx, args[1:])
	case "version":
		fmt.Println(version)
		return nil
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Println(strings.TrimSpace(`pokedex - terminal Pokédex browser

Usage:
  pokedex <command> [flags]

Commands:
  tui        Browse the catalog interactively
  show       Print one Pokémon's details (by name or id)
  favorites  List or clear persisted favorites
  config     Manage the YAML config (init|validate|path)
  version    Print the version
  help       Show this help

Config resolution order: --config flag, POKEDEX_CONFIG (a .env file is
honored), then ~/.config/pokedex/config.yml (created on first run).`))
}
