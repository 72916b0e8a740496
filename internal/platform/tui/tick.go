// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives the fixed-timestep loop from frame ticks, maps keys to actions
// and hosts games locally and over SSH.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one display frame. Token ties it to the loop run that
// scheduled it so frames of a stopped loop are ignored.
type TickMsg struct {
	Token uint64
	Time  time.Time
}

// resizeSettledMsg is posted once the terminal has stopped resizing.
type resizeSettledMsg struct{}

// frameCmd schedules the next display frame.
func frameCmd(token uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Token: token, Time: t}
	})
}

// waitResize blocks until the resize debouncer fires or ctx ends.
func waitResize(ctx context.Context, settled <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-settled:
			return resizeSettledMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}
