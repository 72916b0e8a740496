package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer converts screen buffers to styled strings. Each SSH session
// needs its own lipgloss renderer so colors match the remote terminal.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewRenderer creates a renderer on r, or on the default renderer when r is nil.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return &Renderer{styles: styles, plain: r.NewStyle()}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.plain
}

// Screen renders the buffer. Adjacent cells with the same color share one
// styled run to keep escape sequences down.
func (r *Renderer) Screen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(nil).Screen(s)
}
