// Package hud draws the status line and the phase overlays every game shares.
package hud

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Height is the number of rows the header occupies.
const Height = 2

// Header draws the title, the score and extra fields on row 0 and a
// separator on row 1.
func Header(dst *core.Screen, title string, score int, fields ...string) {
	parts := append([]string{title, fmt.Sprintf("Score: %d", score)}, fields...)
	dst.DrawTextColored(1, 0, strings.Join(parts, "  "), core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// Seconds formats a tick count as whole seconds, rounding up.
func Seconds(ticks int) string {
	return fmt.Sprintf("%ds", (max(ticks, 0)+59)/60)
}

// Lives formats remaining lives as hearts.
func Lives(n int) string {
	return "Lives: " + strings.Repeat("♥", max(n, 0))
}

// Overlay draws the panel for the current phase. Nothing is drawn while
// playing. hint is shown on the start panel, usually the controls.
func Overlay(dst *core.Screen, title string, st core.GameState, level core.Level, hint string) {
	switch st.Phase {
	case core.PhaseIdle:
		lines := []string{}
		if hint != "" {
			lines = append(lines, hint)
		}
		lines = append(lines,
			fmt.Sprintf("Difficulty: %s (Tab to change)", level),
			"Enter/Space to start",
		)
		dst.DrawPanel(title, lines...)
	case core.PhasePaused:
		dst.DrawPanel("Paused", "P to resume")
	case core.PhaseGameOver:
		heading := "Game Over"
		if st.Won {
			heading = "You Win!"
		}
		dst.DrawPanel(heading,
			fmt.Sprintf("Final Score: %d", st.Score),
			"R to restart  B for title",
		)
	}
}

// TooSmall draws the error panel shown instead of a board that does not fit.
func TooSmall(dst *core.Screen, needW, needH int) {
	dst.Clear()
	dst.DrawPanel("Window too small", fmt.Sprintf("Need %dx%d", needW, needH), "Resize to continue")
}

// Arena returns a w×h board centered horizontally below the header.
func Arena(screen core.Rect, w, h int) core.Rect {
	below := core.NewRect(0, Height, screen.W, screen.H-Height)
	r := below.Centered(w, h)
	r.Y = Height
	return r
}
