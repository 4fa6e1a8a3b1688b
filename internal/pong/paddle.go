package pong

import "github.com/vovakirdan/proto-pong/internal/core"

// PaddleSpeed is the vertical speed of a moving paddle in units per second.
const PaddleSpeed = 120.0

// Paddle is a player paddle driven by a Controller.
type Paddle struct {
	entity
	controller Controller
	position   core.Vec2
	previous   core.Vec2
	size       core.Vec2
	speed      float64

	table Ref
	ball  Ref
}

// NewPaddle creates a resting paddle centered at position.
func NewPaddle(c Controller, position, size core.Vec2) *Paddle {
	return &Paddle{
		entity:     entity{kind: KindPaddle},
		controller: c,
		position:   position,
		previous:   position,
		size:       size,
	}
}

// Setup wires the paddle to the table and ball of its scene.
func (p *Paddle) Setup(table, ball Ref) {
	p.table = table
	p.ball = ball
}

func (p *Paddle) Controller() Controller { return p.controller }
func (p *Paddle) Position() core.Vec2    { return p.position }
func (p *Paddle) Previous() core.Vec2    { return p.previous }
func (p *Paddle) Size() core.Vec2        { return p.size }

// Speed returns the signed vertical speed; positive moves up.
func (p *Paddle) Speed() float64 { return p.speed }

func (p *Paddle) Left() float64   { return p.position.X - p.size.X*0.5 }
func (p *Paddle) Right() float64  { return p.position.X + p.size.X*0.5 }
func (p *Paddle) Top() float64    { return p.position.Y + p.size.Y*0.5 }
func (p *Paddle) Bottom() float64 { return p.position.Y - p.size.Y*0.5 }

func (p *Paddle) MoveUp()   { p.speed = PaddleSpeed }
func (p *Paddle) MoveDown() { p.speed = -PaddleSpeed }
func (p *Paddle) Stop()     { p.speed = 0 }

// Reset recenters the paddle vertically at y and stops it.
func (p *Paddle) Reset(y float64) {
	p.position.Y = y
	p.previous = p.position
	p.speed = 0
}

// Handle forwards the event to the controller and freezes interpolation on
// pause.
func (p *Paddle) Handle(ev core.Event) {
	if p.controller != nil {
		p.controller.Handle(ev)
	}
	if ev.Type == core.EventPause {
		p.previous = p.position
	}
}

// Update lets the controller steer, then moves and clamps the paddle inside
// the table.
func (p *Paddle) Update(dt float64) {
	table := mustLookup[*Table](p.scene, p.table)
	ball := mustLookup[*Ball](p.scene, p.ball)

	if p.controller != nil {
		p.controller.Update(p, table, ball, dt)
	}

	p.previous = p.position
	p.position.Y += p.speed * dt

	half := p.size.Y * 0.5
	if p.position.Y+half > table.Top() {
		p.position.Y = table.Top() - half
	} else if p.position.Y-half < table.Bottom() {
		p.position.Y = table.Bottom() + half
	}
}

// Draw queues the paddle interpolated between its last two positions.
func (p *Paddle) Draw(_, interp float64, r core.Renderer) {
	r.QueueQuad(p.position.Lerp(p.previous, interp), p.size, core.ColorWhite)
}
