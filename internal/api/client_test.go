package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pokedex/internal/config"
)

const listBody = `{
	"count": 1302,
	"results": [
		{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
		{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}
	]
}`

const detailBody = `{
	"id": 25,
	"name": "pikachu",
	"weight": 60,
	"height": 4,
	"base_experience": 112,
	"types": [
		{"slot": 1, "type": {"name": "electric"}}
	],
	"sprites": {
		"other": {
			"official-artwork": {
				"front_default": "https://img.example/25.png"
			}
		}
	}
}`

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.API{
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
		ListLimit:      151,
		UserAgent:      "pokedex-test",
	})
}

func TestListPokemon(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon" {
			t.Errorf("path = %q, want /pokemon", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "151" {
			t.Errorf("limit = %q, want 151", got)
		}
		if ua := r.Header.Get("User-Agent"); ua != "pokedex-test" {
			t.Errorf("user agent = %q", ua)
		}
		w.Write([]byte(listBody))
	}))

	entries, total, err := c.ListPokemon(context.Background())
	if err != nil {
		t.Fatalf("ListPokemon() error: %v", err)
	}
	if total != 1302 {
		t.Errorf("total = %d, want 1302", total)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "bulbasaur" || entries[0].ID != 1 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].ID != 25 {
		t.Errorf("entries[1].ID = %d, want 25", entries[1].ID)
	}
	if entries[0].Favorite || entries[1].Favorite {
		t.Error("favorite flags should default false")
	}
}

func TestGetPokemon_ByName(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/pikachu" {
			t.Errorf("path = %q, want /pokemon/pikachu", r.URL.Path)
		}
		w.Write([]byte(detailBody))
	}))

	d, err := c.GetPokemon(context.Background(), "Pikachu")
	if err != nil {
		t.Fatalf("GetPokemon() error: %v", err)
	}
	if d.ID != 25 || d.Name != "pikachu" {
		t.Errorf("detail identity = %d/%q", d.ID, d.Name)
	}
	if d.Weight != 60 || d.Height != 4 {
		t.Errorf("weight/height = %v/%v", d.Weight, d.Height)
	}
	if len(d.Types) != 1 || d.Types[0] != "electric" {
		t.Errorf("types = %v", d.Types)
	}
	if d.ArtworkURL != "https://img.example/25.png" {
		t.Errorf("artwork = %q", d.ArtworkURL)
	}
}

func TestGetPokemon_ByURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/25/" {
			t.Errorf("path = %q, want /pokemon/25/", r.URL.Path)
		}
		w.Write([]byte(detailBody))
	}))
	defer srv.Close()

	c := New(config.API{BaseURL: "https://unused.example", TimeoutSeconds: 5, ListLimit: 1})
	d, err := c.GetPokemon(context.Background(), srv.URL+"/pokemon/25/")
	if err != nil {
		t.Fatalf("GetPokemon() error: %v", err)
	}
	if d.ID != 25 {
		t.Errorf("detail ID = %d, want 25", d.ID)
	}
}

func TestGetPokemon_MissingOptionalFields(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 132, "name": "ditto", "weight": 40, "height": 3}`))
	}))

	d, err := c.GetPokemon(context.Background(), "ditto")
	if err != nil {
		t.Fatalf("GetPokemon() error: %v", err)
	}
	if len(d.Types) != 0 {
		t.Errorf("types = %v, want empty", d.Types)
	}
	if d.ArtworkURL != "" {
		t.Errorf("artwork = %q, want empty", d.ArtworkURL)
	}
}

func TestGetPokemon_ServerError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))

	_, err := c.GetPokemon(context.Background(), "pikachu")
	if err == nil {
		t.Fatal("GetPokemon() = nil error, want failure")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error should carry status, got %v", err)
	}
}

func TestGetPokemon_MalformedJSON(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))

	if _, err := c.GetPokemon(context.Background(), "pikachu"); err == nil {
		t.Fatal("GetPokemon() = nil error, want decode failure")
	}
}

func TestGetPokemon_ContextCancelled(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.GetPokemon(ctx, "pikachu"); err == nil {
		t.Fatal("GetPokemon() with cancelled context should fail")
	}
}
