package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// KeyMap holds the bindings of the game screen. Game bindings become
// actions in the input frame; host bindings are handled by the model.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding

	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Difficulty key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Pause, k.Restart, k.Difficulty, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Fire},
		{k.Confirm, k.Pause, k.Restart, k.Back},
		{k.Easy, k.Medium, k.Hard, k.Difficulty},
		{k.VolumeUp, k.VolumeDown, k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),

		Easy:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Medium:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Hard:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Difficulty: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "difficulty")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "louder")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "quieter")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Action translates a key code to a game action, ActionNone for host keys
// and unbound keys.
func (k KeyMap) Action(code string) core.Action {
	for _, b := range []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	} {
		if matchesCode(b.binding, code) {
			return b.action
		}
	}
	return core.ActionNone
}

// Level returns the level a direct difficulty key selects.
func (k KeyMap) Level(code string) (core.Level, bool) {
	switch {
	case matchesCode(k.Easy, code):
		return core.LevelEasy, true
	case matchesCode(k.Medium, code):
		return core.LevelMedium, true
	case matchesCode(k.Hard, code):
		return core.LevelHard, true
	}
	return "", false
}

func matchesCode(b key.Binding, code string) bool {
	for _, bound := range b.Keys() {
		if bound == code {
			return true
		}
	}
	return false
}
