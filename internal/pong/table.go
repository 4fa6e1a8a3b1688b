package pong

import "github.com/vovakirdan/proto-pong/internal/core"

// lineWidth is the thickness of the table outline and net.
const lineWidth = 0.5

// Table is the playfield. It never changes after construction.
type Table struct {
	entity
	position core.Vec2
	size     core.Vec2
}

// NewTable creates a table centered at position.
func NewTable(position, size core.Vec2) *Table {
	return &Table{
		entity:   entity{kind: KindTable},
		position: position,
		size:     size,
	}
}

// Position returns the table center.
func (t *Table) Position() core.Vec2 { return t.position }

// Size returns the table size.
func (t *Table) Size() core.Vec2 { return t.size }

// Left returns the x-coordinate of the left edge.
func (t *Table) Left() float64 { return t.position.X - t.size.X*0.5 }

// Right returns the x-coordinate of the right edge.
func (t *Table) Right() float64 { return t.position.X + t.size.X*0.5 }

// Top returns the y-coordinate of the top edge.
func (t *Table) Top() float64 { return t.position.Y + t.size.Y*0.5 }

// Bottom returns the y-coordinate of the bottom edge.
func (t *Table) Bottom() float64 { return t.position.Y - t.size.Y*0.5 }

// Draw queues the outline and the net.
func (t *Table) Draw(_, _ float64, r core.Renderer) {
	r.QueueQuad(core.V(t.position.X, t.Top()), core.V(t.size.X, lineWidth), core.ColorWhite)
	r.QueueQuad(core.V(t.position.X, t.Bottom()), core.V(t.size.X, lineWidth), core.ColorWhite)
	r.QueueQuad(core.V(t.Left(), t.position.Y), core.V(lineWidth, t.size.Y), core.ColorWhite)
	r.QueueQuad(core.V(t.Right(), t.position.Y), core.V(lineWidth, t.size.Y), core.ColorWhite)
	r.QueueQuad(t.position, core.V(lineWidth, t.size.Y), core.ColorWhite)
}
