package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// List view rendering

func (m *Model) View() string {
	if m.w == 0 {
		m.w = 100
	}
	if m.h == 0 {
		m.h = 30
	}
	if m.phase != detailIdle {
		return m.renderDetail()
	}
	return m.renderList()
}

func (m *Model) renderList() string {
	var sb strings.Builder

	// Header with filter status
	header := m.th.title.Render("Pokédex")
	if m.filter.Query != "" {
		header += m.th.label.Render(fmt.Sprintf(" • Search: %q", m.filter.Query))
	}
	if m.filter.FavoritesOnly {
		header += m.th.ok.Render(" • ★ Favorites")
	}
	if m.filter.Fuzzy {
		header += m.th.label.Render(" • fuzzy")
	}
	sb.WriteString(header + "\n\n")

	if m.searchActive {
		sb.WriteString(m.searchInput.View() + "\n\n")
	}

	if m.loading {
		sb.WriteString(m.spin.View() + " Fetching catalog...\n")
		return sb.String()
	}

	if m.loadErr != nil {
		sb.WriteString(m.th.bad.Render("Could not load the catalog.") + "\n")
		sb.WriteString(m.th.label.Render(m.loadErr.Error()) + "\n\n")
		sb.WriteString(m.th.footer.Render("Press R to retry • Q to quit"))
		return sb.String()
	}

	rows := m.visibleRows()
	if len(rows) == 0 {
		if len(m.catalog) == 0 {
			sb.WriteString(m.th.label.Render("The catalog is empty.\n"))
		} else {
			sb.WriteString(m.th.label.Render("No Pokémon match the current filter.\n"))
		}
		sb.WriteString("\n")
		sb.WriteString(m.th.footer.Render("/ search • F favorites • Esc clear • Q quit"))
		return sb.String()
	}

	headerLines := 3
	footerLines := 3
	if m.searchActive {
		headerLines += 2
	}
	availableHeight := m.h - headerLines - footerLines
	if availableHeight < 5 {
		availableHeight = 5
	}

	// Window the list around the selection
	start := m.selected
	if start > len(rows)-availableHeight {
		start = len(rows) - availableHeight
	}
	if start < 0 {
		start = 0
	}
	end := start + availableHeight
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		e := rows[i]
		style := m.th.row
		cursor := "  "
		if i == m.selected {
			style = m.th.rowSelected
			cursor = "▶ "
		}

		line := cursor
		if e.Favorite {
			line += m.th.ok.Render("★ ")
		} else {
			line += "  "
		}
		if e.ID > 0 {
			line += m.th.label.Render(fmt.Sprintf("#%-4d ", e.ID))
		}
		line += style.Render(truncate(e.Name, 40))

		sb.WriteString(style.Render(line) + "\n")
	}

	sb.WriteString("\n")
	if t := m.renderToasts(); t != "" {
		sb.WriteString(t + "\n")
	}
	sb.WriteString(m.th.footer.Render(fmt.Sprintf(
		"Showing %d-%d of %d (%s total upstream) | ↑↓ navigate • Enter detail • Space favorite • / search • F filter • R refetch • Q quit",
		start+1, end, len(rows), humanize.Comma(int64(m.total)))))

	return sb.String()
}
