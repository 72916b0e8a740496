package core

// Action is a semantic input, abstracted from physical keys so that games
// work with intents and the platform owns the key bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - fire, launch, hard drop, pop
	ActionConfirm        // Enter - start, flip, pick/drop
	ActionPause          // P, Esc
	ActionRestart        // R after game over
	ActionBack           // B - back to the start screen after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one fixed update.
// Pressed holds edge-triggered actions (key went down since the previous
// update); Held holds actions whose key is currently down.
type InputFrame struct {
	Actions map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed in this frame. A pressed action also
// counts as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Has reports whether a was pressed in this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Held reports whether a's key is down, pressed this frame or not.
func (f InputFrame) Held(a Action) bool {
	return f.held[a] || f.Actions[a]
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.held)
}

// ClearPressed drops edge-triggered actions and keeps held ones. The
// platform calls it between the catch-up updates of a single frame so a
// key press is consumed exactly once.
func (f *InputFrame) ClearPressed() {
	clear(f.Actions)
}

// Clone creates an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.held {
		c.held[k] = v
	}
	return c
}
