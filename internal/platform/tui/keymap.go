package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Help   key.Binding
	Mute   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Reset, k.Quit, k.Help, k.Mute}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Toggle, k.Reset},
		{k.Help, k.Quit},
		{k.Mute},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Toggle):
		return core.ActionToggle, false
	case key.Matches(msg, km.keys.Reset):
		return core.ActionReset, false
	}
	return core.ActionNone, false
}

// Terminals report key presses and auto-repeats but never releases. A held
// direction is considered released once no repeat arrived in time. The first
// press waits longer to cover the terminal's initial repeat delay.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 150 * time.Millisecond
)

// holdTracker synthesizes key releases for held directions.
type holdTracker struct {
	deadline map[core.Action]time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{deadline: make(map[core.Action]time.Time)}
}

// Press records a press at now. It reports whether the key was not already
// held (a fresh key down).
func (h *holdTracker) Press(a core.Action, now time.Time) bool {
	_, held := h.deadline[a]
	if held {
		h.deadline[a] = now.Add(repeatHold)
		return false
	}
	h.deadline[a] = now.Add(firstHold)
	return true
}

// Release forgets a held key. It reports whether the key was held.
func (h *holdTracker) Release(a core.Action) bool {
	_, held := h.deadline[a]
	delete(h.deadline, a)
	return held
}

// Expire releases and returns every key whose deadline passed.
func (h *holdTracker) Expire(now time.Time) []core.Action {
	var out []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if d, held := h.deadline[a]; held && !now.Before(d) {
			delete(h.deadline, a)
			out = append(out, a)
		}
	}
	return out
}
