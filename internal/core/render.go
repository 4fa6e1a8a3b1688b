package core

// Renderer accepts axis-aligned colored rectangles. Rasterization, batching
// and presentation are up to the implementation.
type Renderer interface {
	// QueueQuad adds a rectangle centered at position with the given size.
	QueueQuad(position, size Vec2, color Color)
}

// Quad is a queued rectangle.
type Quad struct {
	Position Vec2 // Center
	Size     Vec2
	Color    Color
}

// QuadRecorder is a Renderer that keeps every queued quad in order.
type QuadRecorder struct {
	Quads []Quad
}

// QueueQuad records the quad.
func (r *QuadRecorder) QueueQuad(position, size Vec2, color Color) {
	r.Quads = append(r.Quads, Quad{Position: position, Size: size, Color: color})
}

// Reset drops all recorded quads, keeping the backing storage.
func (r *QuadRecorder) Reset() {
	r.Quads = r.Quads[:0]
}

// Len returns the number of recorded quads.
func (r *QuadRecorder) Len() int {
	return len(r.Quads)
}
