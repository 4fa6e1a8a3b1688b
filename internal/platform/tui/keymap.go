package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/proto-pong/internal/core"
	"github.com/vovakirdan/proto-pong/internal/pong"
)

// Terminals report key repeats but never key releases. A held key is
// considered released when no repeat arrives within these windows.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyMap holds the key bindings of the game.
type KeyMap struct {
	RightUp   key.Binding
	RightDown key.Binding
	LeftUp    key.Binding
	LeftDown  key.Binding
	Next      key.Binding
	Back      key.Binding
	Yes       key.Binding
	No        key.Binding
	Help      key.Binding
	One       key.Binding
	Two       key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows for the right player,
// w/s for the left player.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RightUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "right up")),
		RightDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "right down")),
		LeftUp:    key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "left up")),
		LeftDown:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "left down")),
		Next:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "continue")),
		Back:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Help:      key.NewBinding(key.WithKeys("h", "H", "?"), key.WithHelp("h", "controls")),
		One:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "single player")),
		Two:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "two players")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit now")),
	}
}

// stateKeys adapts a KeyMap to bubbles/help for one game state.
type stateKeys struct {
	keys  KeyMap
	state pong.State
	mode  pong.Mode
}

// ShortHelp returns the bindings that matter in the current state.
func (k stateKeys) ShortHelp() []key.Binding {
	switch k.state {
	case pong.StateMain:
		return []key.Binding{k.keys.One, k.keys.Two, k.keys.Help, k.keys.Back}
	case pong.StateMatch:
		if k.mode == pong.ModeVersus {
			return []key.Binding{k.keys.LeftUp, k.keys.LeftDown, k.keys.RightUp, k.keys.RightDown, k.keys.Back}
		}
		return []key.Binding{k.keys.RightUp, k.keys.RightDown, k.keys.Back}
	case pong.StateKickoff:
		return []key.Binding{k.keys.Next}
	case pong.StateAbort:
		return []key.Binding{k.keys.Yes, k.keys.No}
	case pong.StateWin, pong.StateHelp:
		return []key.Binding{k.keys.Back}
	default:
		return []key.Binding{k.keys.ForceQuit}
	}
}

// FullHelp returns every binding grouped by purpose.
func (k stateKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.keys.RightUp, k.keys.RightDown, k.keys.LeftUp, k.keys.LeftDown},
		{k.keys.One, k.keys.Two, k.keys.Help},
		{k.keys.Next, k.keys.Yes, k.keys.No, k.keys.Back, k.keys.ForceQuit},
	}
}

// paddleKey describes a movement binding and the events it produces.
type paddleKey struct {
	binding  *key.Binding
	press    core.EventType
	release  core.EventType
	opposite core.EventType
}

// KeyMapper translates key messages into game events. Movement keys go
// through a hold tracker so that releases are synthesized.
type KeyMapper struct {
	keys   KeyMap
	holds  *holdTracker
	paddle []paddleKey
}

// NewKeyMapper creates a mapper with the given bindings and hold windows.
func NewKeyMapper(keys KeyMap, initial, repeat time.Duration) *KeyMapper {
	km := &KeyMapper{keys: keys, holds: newHoldTracker(initial, repeat)}
	km.paddle = []paddleKey{
		{&km.keys.RightUp, core.EventPlayerAMoveUp, core.EventPlayerAMoveUpReleased, core.EventPlayerAMoveDown},
		{&km.keys.RightDown, core.EventPlayerAMoveDown, core.EventPlayerAMoveDownReleased, core.EventPlayerAMoveUp},
		{&km.keys.LeftUp, core.EventPlayerBMoveUp, core.EventPlayerBMoveUpReleased, core.EventPlayerBMoveDown},
		{&km.keys.LeftDown, core.EventPlayerBMoveDown, core.EventPlayerBMoveDownReleased, core.EventPlayerBMoveUp},
	}
	return km
}

// Keys returns the bindings.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key press at time now into events.
// Returns true if the key requests an immediate exit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now time.Time) (events []core.EventType, forceQuit bool) {
	if key.Matches(msg, km.keys.ForceQuit) {
		return nil, true
	}

	for _, pk := range km.paddle {
		if key.Matches(msg, *pk.binding) {
			return km.holds.press(pk.press, pk.release, pk.opposite, now), false
		}
	}

	switch {
	case key.Matches(msg, km.keys.Next):
		return []core.EventType{core.EventNext}, false
	case key.Matches(msg, km.keys.Back):
		return []core.EventType{core.EventQuit}, false
	case key.Matches(msg, km.keys.Yes):
		return []core.EventType{core.EventYes}, false
	case key.Matches(msg, km.keys.No):
		return []core.EventType{core.EventNo}, false
	case key.Matches(msg, km.keys.Help):
		return []core.EventType{core.EventHelp}, false
	case key.Matches(msg, km.keys.One):
		return []core.EventType{core.EventOne}, false
	case key.Matches(msg, km.keys.Two):
		return []core.EventType{core.EventTwo}, false
	}
	return nil, false
}

// Expire returns the releases of keys whose hold window passed.
func (km *KeyMapper) Expire(now time.Time) []core.EventType {
	return km.holds.expire(now)
}

// ReleaseAll releases every held key, e.g. when focus is lost.
func (km *KeyMapper) ReleaseAll() []core.EventType {
	return km.holds.releaseAll()
}

type hold struct {
	release  core.EventType
	deadline time.Time
}

// holdTracker synthesizes key releases from the timing of key repeats.
type holdTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.EventType]hold
}

func newHoldTracker(initial, repeat time.Duration) *holdTracker {
	return &holdTracker{initial: initial, repeat: repeat, held: make(map[core.EventType]hold)}
}

// press registers a press. The first press emits the press event and waits
// for the terminal's initial repeat delay; repeats only extend the hold.
// Pressing the opposite direction releases it first.
func (h *holdTracker) press(press, release, opposite core.EventType, now time.Time) []core.EventType {
	if cur, ok := h.held[press]; ok {
		cur.deadline = now.Add(h.repeat)
		h.held[press] = cur
		return nil
	}

	var out []core.EventType
	if opp, ok := h.held[opposite]; ok {
		out = append(out, opp.release)
		delete(h.held, opposite)
	}
	h.held[press] = hold{release: release, deadline: now.Add(h.initial)}
	return append(out, press)
}

func (h *holdTracker) expire(now time.Time) []core.EventType {
	var out []core.EventType
	for press, cur := range h.held {
		if now.After(cur.deadline) {
			out = append(out, cur.release)
			delete(h.held, press)
		}
	}
	slices.Sort(out)
	return out
}

func (h *holdTracker) releaseAll() []core.EventType {
	var out []core.EventType
	for press, cur := range h.held {
		out = append(out, cur.release)
		delete(h.held, press)
	}
	slices.Sort(out)
	return out
}
