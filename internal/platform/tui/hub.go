package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/registry"
)

const (
	cardWidth = 34
	cardGap   = 2
)

// hubStyles holds the card styles of one renderer.
type hubStyles struct {
	title    lipgloss.Style
	card     lipgloss.Style
	name     lipgloss.Style
	category lipgloss.Style
	desc     lipgloss.Style
	command  lipgloss.Style
	missing  lipgloss.Style
}

func newHubStyles(r *lipgloss.Renderer) hubStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return hubStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(cardWidth),
		name:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		category: r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		desc:     r.NewStyle().Foreground(lipgloss.Color("252")),
		command:  r.NewStyle().Foreground(lipgloss.Color("86")),
		missing:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// RenderHub lays out one card per catalog record in a grid that fits width.
// Records whose id has no registered game are shown greyed out.
func RenderHub(records []registry.Record, width int, r *lipgloss.Renderer) string {
	st := newHubStyles(r)

	cards := make([]string, 0, len(records))
	for _, rec := range records {
		cards = append(cards, renderCard(st, rec))
	}

	perRow := max(1, (width+cardGap)/(cardWidth+2+cardGap))
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cards[i:end] {
			if j > 0 {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	var b strings.Builder
	b.WriteString(st.title.Render(centerText("ARCADE HUB", width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	return b.String()
}

func renderCard(st hubStyles, rec registry.Record) string {
	heading := rec.Title
	if rec.Image != "" {
		heading = rec.Image + " " + heading
	}

	lines := []string{
		st.name.Render(heading),
		st.category.Render(rec.Category),
		st.desc.Render(rec.Description),
	}
	if registry.Exists(rec.ID) {
		lines = append(lines, st.command.Render("arcade play "+rec.ID))
	} else {
		lines = append(lines, st.missing.Render("not installed"))
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

// centerText pads text on the left to center it in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
