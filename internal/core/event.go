package core

// EventType is a semantic input event, abstracted from physical key presses
// and window notifications.
type EventType int

const (
	EventNone                    EventType = iota
	EventPlayerAMoveUp                     // Right player presses up
	EventPlayerAMoveUpReleased             // Right player releases up
	EventPlayerAMoveDown                   // Right player presses down
	EventPlayerAMoveDownReleased           // Right player releases down
	EventPlayerBMoveUp                     // Left player presses up
	EventPlayerBMoveUpReleased             // Left player releases up
	EventPlayerBMoveDown                   // Left player presses down
	EventPlayerBMoveDownReleased           // Left player releases down
	EventMinimize                          // Window lost focus or was minimized
	EventMaximize                          // Window restored
	EventPause                             // Freeze interpolation of match entities
	EventNext                              // Continue (space)
	EventQuit                              // Quit or go back (escape)
	EventYes
	EventNo
	EventHelp
	EventOne // Single player match
	EventTwo // Two player match
	EventWin // A player reached the point limit
)

var eventNames = map[EventType]string{
	EventNone:                    "None",
	EventPlayerAMoveUp:           "PlayerAMoveUp",
	EventPlayerAMoveUpReleased:   "PlayerAMoveUpReleased",
	EventPlayerAMoveDown:         "PlayerAMoveDown",
	EventPlayerAMoveDownReleased: "PlayerAMoveDownReleased",
	EventPlayerBMoveUp:           "PlayerBMoveUp",
	EventPlayerBMoveUpReleased:   "PlayerBMoveUpReleased",
	EventPlayerBMoveDown:         "PlayerBMoveDown",
	EventPlayerBMoveDownReleased: "PlayerBMoveDownReleased",
	EventMinimize:                "Minimize",
	EventMaximize:                "Maximize",
	EventPause:                   "Pause",
	EventNext:                    "Next",
	EventQuit:                    "Quit",
	EventYes:                     "Yes",
	EventNo:                      "No",
	EventHelp:                    "Help",
	EventOne:                     "One",
	EventTwo:                     "Two",
	EventWin:                     "Win",
}

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event wraps an event type.
type Event struct {
	Type EventType
}

// NewEvent creates an event of the given type.
func NewEvent(t EventType) Event {
	return Event{Type: t}
}

// Is reports whether the event has the given type.
func (e Event) Is(t EventType) bool {
	return e.Type == t
}

// IsPlayerA reports whether the event is a movement event for the right player.
func (e Event) IsPlayerA() bool {
	switch e.Type {
	case EventPlayerAMoveUp, EventPlayerAMoveUpReleased,
		EventPlayerAMoveDown, EventPlayerAMoveDownReleased:
		return true
	}
	return false
}

// IsPlayerB reports whether the event is a movement event for the left player.
func (e Event) IsPlayerB() bool {
	switch e.Type {
	case EventPlayerBMoveUp, EventPlayerBMoveUpReleased,
		EventPlayerBMoveDown, EventPlayerBMoveDownReleased:
		return true
	}
	return false
}

// String returns the name of the event type.
func (e Event) String() string {
	return e.Type.String()
}
