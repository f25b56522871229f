// Package api is the gateway to the remote Pokédex catalog service.
// It issues single-shot fetches (no retries; the client timeout bounds
// every call) and maps raw payloads onto the entity models in
// internal/pokedex.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/internal/config"
	"pokedex/internal/pokedex"
)

// Client fetches the catalog list and per-Pokémon detail payloads.
type Client struct {
	base      string
	limit     int
	userAgent string
	http      *http.Client
}

// New builds a client from the api section of the config.
func New(cfg config.API) *Client {
	return &Client{
		base:      strings.TrimRight(cfg.BaseURL, "/"),
		limit:     cfg.ListLimit,
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type listResponse struct {
	Count   int `json:"count"`
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type detailResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	BaseExperience int     `json:"base_experience"`
	Types          []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// ListPokemon fetches the catalog in one request, up to the configured
// list limit. It returns the mapped entries plus the total count the
// service reports upstream (which may exceed the fetched window).
func (c *Client) ListPokemon(ctx context.Context) ([]pokedex.Entry, int, error) {
	u := fmt.Sprintf("%s/pokemon?limit=%d", c.base, c.limit)
	var payload listResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, 0, fmt.Errorf("list pokemon: %w", err)
	}
	entries := make([]pokedex.Entry, 0, len(payload.Results))
	for _, r := range payload.Results {
		entries = append(entries, pokedex.Entry{
			ID:   pokedex.IDFromURL(r.URL),
			Name: r.Name,
			URL:  r.URL,
		})
	}
	return entries, payload.Count, nil
}

// GetPokemon fetches one detail payload. ref is either a full resource
// URL from a catalog entry or a bare name/ID for direct lookups.
func (c *Client) GetPokemon(ctx context.Context, ref string) (pokedex.Detail, error) {
	u := ref
	if !strings.Contains(ref, "://") {
		u = fmt.Sprintf("%s/pokemon/%s", c.base, url.PathEscape(strings.ToLower(ref)))
	}
	var payload detailResponse
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return pokedex.Detail{}, fmt.Errorf("get pokemon %q: %w", ref, err)
	}
	d := pokedex.Detail{
		ID:             payload.ID,
		Name:           payload.Name,
		Weight:         payload.Weight,
		Height:         payload.Height,
		BaseExperience: payload.BaseExperience,
		ArtworkURL:     payload.Sprites.Other.OfficialArtwork.FrontDefault,
	}
	for _, t := range payload.Types {
		if t.Type.Name != "" {
			d.Types = append(d.Types, t.Type.Name)
		}
	}
	return d, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
