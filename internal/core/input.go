package core

// Action is a device-independent input edge.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, Enter, click, touch - start or flap
	ActionPause           // P, Esc - toggle pause
	ActionRestart         // R - new run after game over
	ActionBack            // B - back to the title screen
	ActionQuit            // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
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

// InputFrame collects the action edges observed between two host updates.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Ordered returns the triggered actions in declaration order so that
// dispatch is deterministic regardless of map iteration.
func (f InputFrame) Ordered() []Action {
	var out []Action
	for a := ActionActivate; a <= ActionQuit; a++ {
		if f.Actions[a] {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
