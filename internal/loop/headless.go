package loop

import "github.com/vovakirdan/proto-pong/internal/core"

// Headless is a Platform without a screen. Events are pushed by the caller
// and each frame is captured in a QuadRecorder.
type Headless struct {
	pending      []core.Event
	frame        core.QuadRecorder
	synchronized bool
	frames       int
}

// NewHeadless creates a headless platform. A synchronized platform never
// makes the driver sleep.
func NewHeadless(synchronized bool) *Headless {
	return &Headless{synchronized: synchronized}
}

// Push queues events for the next Poll.
func (h *Headless) Push(types ...core.EventType) {
	for _, t := range types {
		h.pending = append(h.pending, core.NewEvent(t))
	}
}

// Poll returns and clears the queued events.
func (h *Headless) Poll() []core.Event {
	out := h.pending
	h.pending = nil
	return out
}

// Begin clears the frame capture.
func (h *Headless) Begin() core.Renderer {
	h.frame.Reset()
	return &h.frame
}

// End counts the frame.
func (h *Headless) End() {
	h.frames++
}

// Synchronized reports the value given to NewHeadless.
func (h *Headless) Synchronized() bool {
	return h.synchronized
}

// LastFrame returns the quads of the last drawn frame.
func (h *Headless) LastFrame() []core.Quad {
	return h.frame.Quads
}

// Frames returns the number of frames presented.
func (h *Headless) Frames() int {
	return h.frames
}
