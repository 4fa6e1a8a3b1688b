package pong

import "github.com/vovakirdan/proto-pong/internal/core"

// Side identifies a paddle. A plays on the right, B on the left.
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns the screen side of the paddle.
func (s Side) String() string {
	if s == SideB {
		return "left"
	}
	return "right"
}

// Controller steers a paddle.
type Controller interface {
	// Handle receives input events routed to the paddle.
	Handle(ev core.Event)
	// Update sets the paddle's movement for the coming step.
	Update(p *Paddle, t *Table, b *Ball, dt float64)
}

// Human turns keyboard events into paddle movement.
//
// Intent counts held direction keys: up adds one, down subtracts one and each
// release undoes its press. A positive intent moves up, negative moves down.
type Human struct {
	side   Side
	intent int
}

// NewHuman creates a controller listening to the events of side.
func NewHuman(side Side) *Human {
	return &Human{side: side}
}

// Side returns the side the controller listens to.
func (h *Human) Side() Side { return h.side }

// Intent returns the current press balance.
func (h *Human) Intent() int { return h.intent }

// Handle adjusts the intent for events of the controller's side.
func (h *Human) Handle(ev core.Event) {
	up, upReleased, down, downReleased := core.EventPlayerAMoveUp, core.EventPlayerAMoveUpReleased,
		core.EventPlayerAMoveDown, core.EventPlayerAMoveDownReleased
	if h.side == SideB {
		up, upReleased, down, downReleased = core.EventPlayerBMoveUp, core.EventPlayerBMoveUpReleased,
			core.EventPlayerBMoveDown, core.EventPlayerBMoveDownReleased
	}

	switch ev.Type {
	case up, downReleased:
		h.intent++
	case down, upReleased:
		h.intent--
	}
}

// Update applies the intent to the paddle.
func (h *Human) Update(p *Paddle, _ *Table, _ *Ball, _ float64) {
	switch {
	case h.intent > 0:
		p.MoveUp()
	case h.intent < 0:
		p.MoveDown()
	default:
		p.Stop()
	}
}
