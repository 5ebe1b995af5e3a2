package core

// Action represents a semantic host action, abstracted from physical key presses.
// Typed letters are not actions; they travel in InputFrame.Keys.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Esc - pause/unpause
	ActionRestart        // R key - restart after game over
	ActionQuit           // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two simulation ticks.
// Keys keeps typed characters in arrival order so they can be drained
// before the next step.
type InputFrame struct {
	Actions map[Action]bool
	Keys    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type queues a typed character.
func (f *InputFrame) Type(r rune) {
	f.Keys = append(f.Keys, r)
}

// Clear resets all actions and queued keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
