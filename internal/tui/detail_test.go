package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/pokedex"
)

func pikachuDetail() pokedex.Detail {
	return pokedex.Detail{
		ID:             25,
		Name:           "pikachu",
		Weight:         60,
		Height:         4,
		BaseExperience: 112,
		Types:          []string{"electric"},
		ArtworkURL:     "https://img.example/25.png",
	}
}

func TestDetail_OpenStartsLoading(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.selected = 2
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start a detail fetch")
	}
	if m.phase != detailLoading {
		t.Errorf("phase = %v, want detailLoading", m.phase)
	}
	if m.detailCancel == nil {
		t.Error("detail fetch should be cancellable")
	}

	view := m.View()
	if !strings.Contains(view, "Loading") {
		t.Errorf("loading view missing indicator:\n%s", view)
	}
}

func TestDetail_LoadedRendersDerivedFields(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	m.Update(detailMsg{seq: m.detailSeq, detail: pikachuDetail()})

	if m.phase != detailLoaded {
		t.Fatalf("phase = %v, want detailLoaded", m.phase)
	}
	view := m.View()
	for _, want := range []string{"Pikachu #25", "6.00 kg", "0.40 m", "electric"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}
}

func TestDetail_MissingOptionalFieldsRender(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[0])
	m.Update(detailMsg{seq: m.detailSeq, detail: pokedex.Detail{ID: 1, Name: "bulbasaur"}})

	view := m.View()
	if view == "" {
		t.Fatal("detail with absent optional fields should still render")
	}
	if strings.Contains(view, "Types:") || strings.Contains(view, "Artwork:") {
		t.Errorf("absent fields should be omitted:\n%s", view)
	}
}

func TestDetail_FetchErrorIsTerminal(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	m.Update(detailMsg{seq: m.detailSeq, err: errors.New("connection refused")})

	if m.phase != detailError {
		t.Fatalf("phase = %v, want detailError", m.phase)
	}
	view := m.View()
	if strings.Contains(view, "Loading") {
		t.Errorf("error state must not look like loading:\n%s", view)
	}
	if !strings.Contains(view, "Could not load") {
		t.Errorf("error state missing message:\n%s", view)
	}
}

func TestDetail_StaleResultDropped(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	stale := m.detailSeq

	// A second open supersedes the first fetch.
	m.openDetail(m.catalog[0])
	m.Update(detailMsg{seq: stale, detail: pikachuDetail()})

	if m.phase != detailLoading {
		t.Errorf("stale result should be dropped, phase = %v", m.phase)
	}
	if m.detail.ID == 25 {
		t.Error("stale payload must not populate the panel")
	}
}

func TestDetail_ResultAfterCloseDropped(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	seq := m.detailSeq
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.phase != detailIdle {
		t.Fatalf("phase = %v, want detailIdle after esc", m.phase)
	}

	m.Update(detailMsg{seq: seq, detail: pikachuDetail()})
	if m.phase != detailIdle {
		t.Error("result for a dismissed panel must not reopen it")
	}
}

func TestDetail_CloseDiscardsPayload(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	m.Update(detailMsg{seq: m.detailSeq, detail: pikachuDetail()})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.detail.ID != 0 {
		t.Error("payload should be discarded on close, not cached")
	}
	if m.detailCancel != nil {
		t.Error("cancel func should be released on close")
	}
}

func TestDetail_ToggleFavoriteUpdatesStar(t *testing.T) {
	m, db := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	m.Update(detailMsg{seq: m.detailSeq, detail: pikachuDetail()})

	m.Update(keyMsg("f"))
	if fav, _ := db.IsFavorite(25); !fav {
		t.Error("detail toggle should persist")
	}
	if !strings.Contains(m.View(), "★") {
		t.Error("detail view should show the star after toggle")
	}
	if !m.catalog[2].Favorite {
		t.Error("list entry should reflect the detail toggle")
	}
}

func TestShare_GuardsConcurrentInvocation(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	m.Update(detailMsg{seq: m.detailSeq, detail: pikachuDetail()})

	first := m.shareCmd()
	if first == nil {
		t.Fatal("first share should produce a command")
	}
	if !m.sharing {
		t.Fatal("share should be marked in flight")
	}
	if second := m.shareCmd(); second != nil {
		t.Error("second share while pending should be dropped")
	}

	m.Update(shareDoneMsg{})
	if m.sharing {
		t.Error("share completion should clear the guard")
	}
	if m.shareCmd() == nil {
		t.Error("share should be available again after completion")
	}
}

func TestShare_RequiresLoadedDetail(t *testing.T) {
	m, _ := setupTestModel(t)
	loadCatalog(t, m, testEntries())

	m.openDetail(m.catalog[2])
	if cmd := m.shareCmd(); cmd != nil {
		t.Error("share while loading should be a no-op")
	}
}
