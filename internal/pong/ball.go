package pong

import (
	"math"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// Ball tuning.
const (
	BallMinSpeed  = 100.0
	BallMaxSpeed  = 180.0
	ballSpeedGain = 25.0

	// ballMaxBounceAngle is the deflection from horizontal for an edge hit.
	ballMaxBounceAngle = 55.0 * math.Pi / 180.0
)

// Point tells which paddle a ball out of play scored for.
type Point int

const (
	PointNone Point = iota
	PointA
	PointB
)

// String returns the side name of the scoring paddle.
func (p Point) String() string {
	switch p {
	case PointA:
		return "right"
	case PointB:
		return "left"
	default:
		return "none"
	}
}

// Ball is the ball in play.
type Ball struct {
	entity
	position core.Vec2
	previous core.Vec2
	velocity core.Vec2
	radius   float64
	point    Point
	collided bool

	table   Ref
	paddleA Ref
	paddleB Ref
}

// NewBall creates a ball at position moving right at BallMinSpeed.
func NewBall(position core.Vec2, radius float64) *Ball {
	return &Ball{
		entity:   entity{kind: KindBall},
		position: position,
		previous: position,
		velocity: core.V(BallMinSpeed, 0),
		radius:   radius,
	}
}

// Setup wires the ball to the table and both paddles of its scene.
func (b *Ball) Setup(table, paddleA, paddleB Ref) {
	b.table = table
	b.paddleA = paddleA
	b.paddleB = paddleB
}

func (b *Ball) Position() core.Vec2 { return b.position }
func (b *Ball) Previous() core.Vec2 { return b.previous }
func (b *Ball) Velocity() core.Vec2 { return b.velocity }
func (b *Ball) Speed() float64      { return b.velocity.Len() }
func (b *Ball) Radius() float64     { return b.radius }

func (b *Ball) Left() float64   { return b.position.X - b.radius }
func (b *Ball) Right() float64  { return b.position.X + b.radius }
func (b *Ball) Top() float64    { return b.position.Y + b.radius }
func (b *Ball) Bottom() float64 { return b.position.Y - b.radius }

// SetVelocity overrides the ball velocity.
func (b *Ball) SetVelocity(v core.Vec2) { b.velocity = v }

// Scored reports whether the ball has left the table on either side.
func (b *Ball) Scored() bool { return b.point != PointNone }

// ScoredFor returns the paddle the ball scored for, or PointNone.
func (b *Ball) ScoredFor() Point { return b.point }

// PointPaddleA reports whether the ball left past the left edge.
func (b *Ball) PointPaddleA() bool { return b.point == PointA }

// PointPaddleB reports whether the ball left past the right edge.
func (b *Ball) PointPaddleB() bool { return b.point == PointB }

// Collided reports whether the last Update bounced off a wall or paddle.
func (b *Ball) Collided() bool { return b.collided }

// Reset puts the ball back in play at position with a horizontal velocity.
// The sign of speed picks the direction.
func (b *Ball) Reset(position core.Vec2, speed float64) {
	b.position = position
	b.previous = position
	b.velocity = core.V(speed, 0)
	b.point = PointNone
	b.collided = false
}

// Handle freezes interpolation on pause.
func (b *Ball) Handle(ev core.Event) {
	if ev.Type == core.EventPause {
		b.previous = b.position
	}
}

// Update integrates the ball and resolves walls, goals and paddles.
func (b *Ball) Update(dt float64) {
	table := mustLookup[*Table](b.scene, b.table)
	paddleA := mustLookup[*Paddle](b.scene, b.paddleA)
	paddleB := mustLookup[*Paddle](b.scene, b.paddleB)

	b.previous = b.position
	b.position = b.position.Add(b.velocity.Scale(dt))
	b.collided = false

	if b.Top() > table.Top() {
		b.position.Y = table.Top() - b.radius
		b.velocity.Y = -b.velocity.Y
		b.collided = true
	} else if b.Bottom() < table.Bottom() {
		b.position.Y = table.Bottom() + b.radius
		b.velocity.Y = -b.velocity.Y
		b.collided = true
	}

	if b.Right() > table.Right() {
		b.point = PointB
	} else if b.Left() < table.Left() {
		b.point = PointA
	}

	if b.bounce(paddleA, table) || b.bounce(paddleB, table) {
		b.collided = true
	}

	if b.collided {
		if owner := b.scene.Owner(); owner != nil {
			if a := owner.Audio(); a != nil {
				a.Play()
			}
		}
	}
}

// bounce resolves a hit against p and reports whether one happened.
func (b *Ball) bounce(p *Paddle, table *Table) bool {
	contact, ok := hitPaddle(b.position, b.radius, p)
	if !ok {
		return false
	}

	// The front face points at the table center.
	front := 1.0
	if p.position.X > table.position.X {
		front = -1.0
	}
	b.position.X = p.position.X + front*(p.size.X*0.5+b.radius)

	h := relativeHit(contact.Y, p)
	speed := bounceSpeed(b.Speed(), h)
	b.velocity = bounceVelocity(b.velocity.X, -front, speed, h)
	return true
}

// relativeHit maps a contact height to [-1, 1] across the paddle.
func relativeHit(y float64, p *Paddle) float64 {
	return core.ClampF((y-p.position.Y)/(p.size.Y*0.5), -1, 1)
}

// bounceSpeed returns the post-hit speed for relative hit height h. Center
// hits slow the ball down and edge hits speed it up.
func bounceSpeed(speed, h float64) float64 {
	a := math.Abs(h)
	speed += ballSpeedGain * ((3*a - 1) * (2 - a)) / 2
	return core.ClampF(speed, BallMinSpeed, BallMaxSpeed)
}

// bounceVelocity sends the ball back away from the paddle deflected by h.
// toward is the direction of travel into the paddle, used when vx is zero.
func bounceVelocity(vx, toward, speed, h float64) core.Vec2 {
	sign := core.Sign(vx)
	if sign == 0 {
		sign = toward
	}
	dir := core.V(sign, 0).Rotate(-sign * ballMaxBounceAngle * h)
	return dir.Scale(-speed)
}

// Draw queues the ball interpolated between its last two positions. A ball
// out of play is not drawn.
func (b *Ball) Draw(_, interp float64, r core.Renderer) {
	if b.point != PointNone {
		return
	}
	d := b.radius * 2
	r.QueueQuad(b.position.Lerp(b.previous, interp), core.V(d, d), core.ColorWhite)
}
