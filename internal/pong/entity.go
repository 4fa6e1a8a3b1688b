// Package pong implements the Proto Pong simulation: the entity and scene
// model, ball/paddle physics, paddle controllers and the game state machine.
//
// Coordinates are world units with the Y axis pointing up. Paddle A plays on
// the right side of the table and paddle B on the left.
package pong

import "github.com/vovakirdan/proto-pong/internal/core"

// Kind tags the concrete type of an entity.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindTable
	KindLabel
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindTable:
		return "table"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Entity is a scene element. The set of entities is closed: *Ball, *Paddle,
// *Table and *Label are the only implementations.
type Entity interface {
	// Kind returns the entity type tag.
	Kind() Kind
	// Handle reacts to an event.
	Handle(ev core.Event)
	// Update advances the entity by dt seconds.
	Update(dt float64)
	// Draw queues the entity's rectangles. interp blends the previous and
	// current simulation state.
	Draw(dt, interp float64, r core.Renderer)

	base() *entity
}

// entity holds what every entity shares. Embedding it provides no-op Handle
// and Update.
type entity struct {
	kind  Kind
	scene *Scene
}

func (e *entity) Kind() Kind { return e.kind }

func (e *entity) base() *entity { return e }

// Scene returns the scene that owns the entity, or nil when detached.
func (e *entity) Scene() *Scene { return e.scene }

func (e *entity) Handle(core.Event) {}

func (e *entity) Update(float64) {}
