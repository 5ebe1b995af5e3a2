package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/type-defender/internal/core"
)

// GameKeyMap defines the host key bindings shown in the help bar.
// Letters are not bound: they are typed into the game.
type GameKeyMap struct {
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Quit, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart},
		{k.Quit, k.ForceQuit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level (game over)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (paused/game over)"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyEvent is what a single key press means to the host.
type KeyEvent struct {
	Action     core.Action // ActionNone when the key is not a host action
	Rune       rune        // typed character, 0 if none
	Quit       bool
	Screenshot bool
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey interprets msg in light of the current game state. r and q are
// letters while playing (q is typed on later levels) and only act as
// restart and quit when the game is over or paused.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, st core.GameState) KeyEvent {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return KeyEvent{Action: core.ActionQuit, Quit: true}
	case key.Matches(msg, km.keys.Screenshot):
		return KeyEvent{Screenshot: true}
	case key.Matches(msg, km.keys.Pause):
		return KeyEvent{Action: core.ActionPause}
	case key.Matches(msg, km.keys.Quit) && (st.GameOver || st.Paused):
		return KeyEvent{Action: core.ActionQuit, Quit: true}
	case key.Matches(msg, km.keys.Restart) && st.GameOver:
		return KeyEvent{Action: core.ActionRestart}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return KeyEvent{Rune: msg.Runes[0]}
	}
	return KeyEvent{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the event so the caller can handle quit and screenshot.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, st core.GameState, frame *core.InputFrame) KeyEvent {
	ev := km.MapKey(msg, st)
	if ev.Action != core.ActionNone && ev.Action != core.ActionQuit {
		frame.Set(ev.Action)
	}
	if ev.Rune != 0 {
		frame.Type(ev.Rune)
	}
	return ev
}
