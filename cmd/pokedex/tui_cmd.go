package main

import (
	"context"
	"flag"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/api"
	"pokedex/internal/logging"
	"pokedex/internal/state"
	"pokedex/internal/tui"
)

func handleTUI(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config file")
	fuzzy := fs.Bool("fuzzy", false, "Start with fuzzy search enabled")
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
	if *fuzzy {
		c.UI.FuzzySearch = true
	}

	log := logging.New(c.Logging)
	st, err := state.Open(c)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	client := api.New(c.API)
	m := tui.New(c, st, client, log.With("tui"))
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
