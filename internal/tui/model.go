// Package tui implements the interactive Pokédex: a filterable catalog
// list with a per-Pokémon detail panel, favorites toggling, and a
// clipboard share action.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/api"
	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/pokedex"
	"pokedex/internal/state"
)

// detailPhase is the detail panel's fetch state machine. It is
// deliberately decoupled from list selection: the panel is open iff
// the phase is not detailIdle.
type detailPhase int

const (
	detailIdle detailPhase = iota
	detailLoading
	detailLoaded
	detailError
)

type catalogMsg struct {
	entries []pokedex.Entry
	total   int
	err     error
}

type detailMsg struct {
	seq    int
	detail pokedex.Detail
	err    error
}

type shareDoneMsg struct{ err error }

type toast struct {
	msg  string
	when time.Time
	ttl  time.Duration
}

type Model struct {
	cfg    *config.Config
	st     *state.DB
	client *api.Client
	log    *logging.Logger
	th     Theme
	w, h   int

	// catalog list state
	loading  bool
	loadErr  error
	catalog  []pokedex.Entry
	total    int
	filter   pokedex.Filter
	selected int

	searchActive bool
	searchInput  textinput.Model
	spin         spinner.Model

	// detail panel state
	phase        detailPhase
	detail       pokedex.Detail
	detailErr    error
	detailSeq    int
	detailCancel context.CancelFunc

	sharing bool
	toasts  []toast
}

// New builds the TUI model. The gateway client and favorites store are
// injected so the list and the detail panel share one of each.
func New(cfg *config.Config, st *state.DB, client *api.Client, log *logging.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "Search by name..."
	input.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		cfg:         cfg,
		st:          st,
		client:      client,
		log:         log,
		th:          themeByName(cfg.UI.Theme),
		searchInput: input,
		spin:        sp,
		filter:      pokedex.Filter{Fuzzy: cfg.UI.FuzzySearch},
		loading:     true,
	}
}

// Init starts the one-shot catalog fetch once the view is up.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCatalogCmd(), m.spin.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading && m.phase != detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case catalogMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			m.log.Errorf("catalog fetch failed: %v", msg.err)
			return m, nil
		}
		m.loadErr = nil
		m.catalog = msg.entries
		m.total = msg.total
		m.clampSelection()
		return m, nil

	case detailMsg:
		// Drop results from fetches that were superseded or whose
		// panel has been dismissed.
		if msg.seq != m.detailSeq || m.phase != detailLoading {
			m.log.Debugf("dropping stale detail result (seq %d)", msg.seq)
			return m, nil
		}
		if msg.err != nil {
			m.phase = detailError
			m.detailErr = msg.err
			m.log.Errorf("detail fetch failed: %v", msg.err)
			return m, nil
		}
		m.phase = detailLoaded
		m.detail = msg.detail
		return m, nil

	case shareDoneMsg:
		m.sharing = false
		if msg.err != nil {
			m.addToast("share failed: " + msg.err.Error())
			m.log.Errorf("share failed: %v", msg.err)
		} else {
			m.addToast("copied to clipboard")
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		return m.updateSearch(msg)
	}
	if m.phase != detailIdle {
		return m.handleDetailKeys(msg)
	}
	return m.handleListKeys(msg)
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleRows()

	switch msg.String() {
	case "q", "ctrl+c":
		m.cancelDetail()
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(rows)-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "g", "home":
		m.selected = 0
		return m, nil

	case "G", "end":
		if len(rows) > 0 {
			m.selected = len(rows) - 1
		}
		return m, nil

	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.filter.Query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		m.filter.FavoritesOnly = !m.filter.FavoritesOnly
		m.clampSelection()
		return m, nil

	case "ctrl+f":
		m.filter.Fuzzy = !m.filter.Fuzzy
		if m.filter.Fuzzy {
			m.addToast("fuzzy search on")
		} else {
			m.addToast("fuzzy search off")
		}
		m.clampSelection()
		return m, nil

	case "esc":
		if m.filter.Query != "" {
			m.filter.Query = ""
			m.clampSelection()
		}
		return m, nil

	case "enter":
		if m.selected >= 0 && m.selected < len(rows) {
			return m, m.openDetail(rows[m.selected])
		}
		return m, nil

	case " ", "*":
		if m.selected >= 0 && m.selected < len(rows) {
			m.toggleFavorite(rows[m.selected].ID)
		}
		return m, nil

	case "r":
		if !m.loading {
			m.loading = true
			m.loadErr = nil
			return m, tea.Batch(m.fetchCatalogCmd(), m.spin.Tick)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.filter.Query = ""
		m.clampSelection()
		return m, nil
	case "enter", "ctrl+j":
		m.searchActive = false
		m.searchInput.Blur()
		m.filter.Query = m.searchInput.Value()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// visibleRows applies the current filter to the catalog.
func (m *Model) visibleRows() []pokedex.Entry {
	return pokedex.Apply(m.catalog, m.filter)
}

func (m *Model) clampSelection() {
	n := len(m.visibleRows())
	if m.selected >= n {
		m.selected = 0
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// toggleFavorite flips the flag for an identity present in the loaded
// catalog. Unknown identities are a no-op, never a crash.
func (m *Model) toggleFavorite(id int) {
	idx := -1
	for i := range m.catalog {
		if m.catalog[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.log.Debugf("favorite toggle for unknown id %d ignored", id)
		return
	}
	nowFav, err := m.st.Toggle(id, m.catalog[idx].Name)
	if err != nil {
		m.addToast("favorite not saved: " + err.Error())
		m.log.Errorf("favorite toggle failed: %v", err)
		return
	}
	m.catalog[idx].Favorite = nowFav
	m.clampSelection()
}
