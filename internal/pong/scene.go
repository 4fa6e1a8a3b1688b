package pong

import (
	"fmt"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// Owner is what a scene's entities can reach through the scene.
type Owner interface {
	Audio() core.Audio
}

// Ref is a non-owning reference to an entity in a Scene. The zero Ref is
// invalid. A Ref goes stale when its scene is cleared and never resolves again.
type Ref struct {
	index int
	gen   uint32
}

// Valid reports whether the ref was issued by a scene. It does not check
// whether the ref is stale; use Scene.At for that.
func (r Ref) Valid() bool {
	return r.gen != 0
}

// Scene is an ordered collection that owns its entities.
type Scene struct {
	owner    Owner
	entities []Entity
	gen      uint32
}

// NewScene creates an empty scene reporting to owner.
func NewScene(owner Owner) *Scene {
	return &Scene{owner: owner, gen: 1}
}

// Owner returns the scene owner.
func (s *Scene) Owner() Owner {
	return s.owner
}

// Append adds an entity at the end of the scene and returns a ref to it.
func (s *Scene) Append(e Entity) Ref {
	e.base().scene = s
	s.entities = append(s.entities, e)
	return Ref{index: len(s.entities) - 1, gen: s.gen}
}

// At resolves a ref. It fails for the zero ref and for refs issued before the
// last Clear.
func (s *Scene) At(r Ref) (Entity, bool) {
	if r.gen != s.gen || r.index < 0 || r.index >= len(s.entities) {
		return nil, false
	}
	return s.entities[r.index], true
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Each calls fn for every entity in order.
func (s *Scene) Each(fn func(Ref, Entity)) {
	for i, e := range s.entities {
		fn(Ref{index: i, gen: s.gen}, e)
	}
}

// Clear drops every entity and invalidates all refs issued so far.
func (s *Scene) Clear() {
	for _, e := range s.entities {
		e.base().scene = nil
	}
	s.entities = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
}

// Update advances every entity in order.
func (s *Scene) Update(dt float64) {
	for _, e := range s.entities {
		e.Update(dt)
	}
}

// Draw draws every entity in order.
func (s *Scene) Draw(dt, interp float64, r core.Renderer) {
	for _, e := range s.entities {
		e.Draw(dt, interp, r)
	}
}

// lookup resolves a ref to a concrete entity type.
func lookup[T Entity](s *Scene, r Ref) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	e, ok := s.At(r)
	if !ok {
		return zero, false
	}
	t, ok := e.(T)
	return t, ok
}

// mustLookup resolves a ref that the match wiring guarantees to be live.
// Failing here means an entity was used before setup or after teardown.
func mustLookup[T Entity](s *Scene, r Ref) T {
	t, ok := lookup[T](s, r)
	if !ok {
		var zero T
		panic(fmt.Sprintf("pong: unresolved %T reference (used before setup or after teardown)", zero))
	}
	return t
}
