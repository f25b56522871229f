package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/pokedex"
)

// Detail panel rendering and interaction

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancelDetail()
		return m, tea.Quit

	case "esc", "backspace":
		m.closeDetail()
		return m, nil

	case "f", " ", "*":
		if m.phase == detailLoaded {
			m.toggleFavorite(m.detail.ID)
		}
		return m, nil

	case "s":
		return m, m.shareCmd()
	}

	return m, nil
}

func (m *Model) renderDetail() string {
	var body string
	switch m.phase {
	case detailLoading:
		body = m.spin.View() + " Loading...\n"
	case detailError:
		var sb strings.Builder
		sb.WriteString(m.th.bad.Render("Could not load this Pokémon.") + "\n")
		if m.detailErr != nil {
			sb.WriteString(m.th.label.Render(m.detailErr.Error()) + "\n")
		}
		sb.WriteString("\n" + m.th.footer.Render("Press Esc to go back"))
		body = sb.String()
	case detailLoaded:
		body = m.renderDetailLoaded()
	default:
		body = ""
	}
	return m.th.border.Render(body)
}

func (m *Model) renderDetailLoaded() string {
	d := m.detail
	var sb strings.Builder

	title := pokedex.Title(d.Name)
	if d.ID > 0 {
		title += fmt.Sprintf(" #%d", d.ID)
	}
	sb.WriteString(m.th.title.Render(title))
	if m.isFavorite(d.ID) {
		sb.WriteString(" " + m.th.ok.Render("★"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.th.label.Render("Weight: "))
	sb.WriteString(pokedex.FormatWeight(d.Weight) + "\n")
	sb.WriteString(m.th.label.Render("Height: "))
	sb.WriteString(pokedex.FormatHeight(d.Height) + "\n")

	if label := pokedex.JoinTypes(d.Types); label != "" {
		sb.WriteString(m.th.label.Render("Types: "))
		sb.WriteString(label + "\n")
	}
	if d.BaseExperience > 0 {
		sb.WriteString(m.th.label.Render("Base XP: "))
		sb.WriteString(fmt.Sprintf("%d\n", d.BaseExperience))
	}
	if d.ArtworkURL != "" {
		sb.WriteString("\n")
		sb.WriteString(m.th.label.Render("Artwork: "))
		sb.WriteString(d.ArtworkURL + "\n")
	}

	sb.WriteString("\n")
	if t := m.renderToasts(); t != "" {
		sb.WriteString(t + "\n")
	}
	sb.WriteString(m.th.footer.Render("F toggle favorite • S share • Esc back • Q quit"))

	return sb.String()
}

// isFavorite reads the flag from the in-memory catalog so the star
// tracks toggles without another store read.
func (m *Model) isFavorite(id int) bool {
	for i := range m.catalog {
		if m.catalog[i].ID == id {
			return m.catalog[i].Favorite
		}
	}
	return false
}
