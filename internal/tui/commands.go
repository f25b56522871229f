package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/pokedex"
)

// fetchCatalogCmd issues the single catalog fetch and merges in the
// persisted favorite flags. The gateway's client timeout bounds the
// call; there is no retry.
func (m *Model) fetchCatalogCmd() tea.Cmd {
	client, st := m.client, m.st
	return func() tea.Msg {
		entries, total, err := client.ListPokemon(context.Background())
		if err != nil {
			return catalogMsg{err: err}
		}
		favs, err := st.FavoriteIDs()
		if err != nil {
			return catalogMsg{err: err}
		}
		return catalogMsg{entries: pokedex.MergeFavorites(entries, favs), total: total}
	}
}

// openDetail moves the panel to Loading and starts a cancellable fetch
// for the selected entry. The sequence number lets Update discard
// results that arrive after the panel moved on.
func (m *Model) openDetail(e pokedex.Entry) tea.Cmd {
	m.cancelDetail()
	m.detailSeq++
	m.phase = detailLoading
	m.detailErr = nil
	m.detail = pokedex.Detail{}

	ctx, cancel := context.WithCancel(context.Background())
	m.detailCancel = cancel

	seq := m.detailSeq
	client := m.client
	ref := e.URL
	if ref == "" {
		ref = e.Name
	}
	fetch := func() tea.Msg {
		d, err := client.GetPokemon(ctx, ref)
		return detailMsg{seq: seq, detail: d, err: err}
	}
	return tea.Batch(fetch, m.spin.Tick)
}

// cancelDetail aborts any in-flight detail fetch. Safe to call when
// none is running.
func (m *Model) cancelDetail() {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
}

// closeDetail dismisses the panel and discards its payload.
func (m *Model) closeDetail() {
	m.cancelDetail()
	m.phase = detailIdle
	m.detail = pokedex.Detail{}
	m.detailErr = nil
}

// shareCmd copies the detail's share text to the system clipboard.
// Re-invocation while a share is still pending is dropped.
func (m *Model) shareCmd() tea.Cmd {
	if m.sharing || m.phase != detailLoaded {
		return nil
	}
	m.sharing = true
	text := pokedex.ShareText(m.detail)
	return func() tea.Msg {
		return shareDoneMsg{err: clipboard.WriteAll(text)}
	}
}

// Toast notifications

func (m *Model) addToast(s string) {
	m.toasts = append(m.toasts, toast{msg: s, when: time.Now(), ttl: 5 * time.Second})
	m.gcToasts()
}

func (m *Model) gcToasts() {
	now := time.Now()
	fresh := m.toasts[:0]
	for _, t := range m.toasts {
		if now.Sub(t.when) < t.ttl {
			fresh = append(fresh, t)
		}
	}
	m.toasts = fresh
}

func (m *Model) renderToasts() string {
	m.gcToasts()
	if len(m.toasts) == 0 {
		return ""
	}
	return m.th.label.Render(m.toasts[len(m.toasts)-1].msg)
}
