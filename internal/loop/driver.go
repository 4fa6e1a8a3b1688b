// Package loop runs a simulation at a fixed rate independent of how often the
// host can draw.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/proto-pong/internal/clock"
	"github.com/vovakirdan/proto-pong/internal/core"
)

// Default rates in Hz.
const (
	DefaultTickRate = 60
	DefaultDrawRate = 60
)

// maxCatchUp bounds how many ticks a single frame may run after a stall.
const maxCatchUp = 4

// Logic is the simulation driven by the loop.
type Logic interface {
	Handle(ev core.Event)
	Update(dt float64)
	Draw(dt, interp float64, r core.Renderer)
	Done() bool
}

// Platform is the host: it supplies input and a render target.
type Platform interface {
	// Poll returns the events that arrived since the last call.
	Poll() []core.Event
	// Begin starts a frame and returns where to draw it.
	Begin() core.Renderer
	// End presents the frame.
	End()
	// Synchronized reports whether End already paces frames (vsync).
	Synchronized() bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock sets the clock measuring frame time.
func WithClock(c clock.Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithTickRate sets the simulation rate in Hz.
func WithTickRate(hz int) Option {
	return func(d *Driver) {
		if hz > 0 {
			d.tick = time.Second / time.Duration(hz)
		}
	}
}

// WithDrawRate sets the target draw rate in Hz.
func WithDrawRate(hz int) Option {
	return func(d *Driver) {
		if hz > 0 {
			d.draw = time.Second / time.Duration(hz)
		}
	}
}

// WithLogger sets the logger for stalls.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSleep replaces time.Sleep for pacing unsynchronized platforms.
func WithSleep(fn func(time.Duration)) Option {
	return func(d *Driver) { d.sleep = fn }
}

// WithMonitor records per-tick update durations into m.
func WithMonitor(m *TickMonitor) Option {
	return func(d *Driver) { d.monitor = m }
}

// Driver advances a Logic in fixed ticks and draws it once per frame with
// interpolation.
type Driver struct {
	logic    Logic
	platform Platform
	clock    clock.Clock
	logger   *log.Logger
	monitor  *TickMonitor
	sleep    func(time.Duration)

	tick time.Duration
	draw time.Duration

	tickAccum time.Duration
	drawAccum time.Duration
	pending   []core.Event
	ticks     uint64
	frames    uint64
}

// New creates a driver for logic hosted by platform.
func New(logic Logic, platform Platform, opts ...Option) *Driver {
	d := &Driver{
		logic:    logic,
		platform: platform,
		logger:   log.New(io.Discard),
		sleep:    time.Sleep,
		tick:     time.Second / DefaultTickRate,
		draw:     time.Second / DefaultDrawRate,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = clock.NewRealTime()
	}
	return d
}

// TickPeriod returns the simulation step.
func (d *Driver) TickPeriod() time.Duration { return d.tick }

// Ticks returns the number of simulation steps run so far.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Frames returns the number of frames drawn so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Frame runs one loop iteration: poll input, run the ticks that are due and
// draw once. It returns false once the logic is done.
func (d *Driver) Frame() bool {
	if d.logic.Done() {
		return false
	}

	d.pending = append(d.pending, d.platform.Poll()...)

	elapsed := d.clock.Restart()
	if limit := maxCatchUp * d.tick; elapsed > limit {
		d.logger.Debug("frame time clamped", "elapsed", elapsed, "limit", limit)
		elapsed = limit
	}
	d.tickAccum += elapsed
	d.drawAccum += elapsed

	dt := d.tick.Seconds()
	for d.tickAccum >= d.tick {
		start := time.Now()
		for _, ev := range d.pending {
			d.logic.Handle(ev)
		}
		d.pending = d.pending[:0]

		d.logic.Update(dt)
		d.tickAccum -= d.tick
		d.ticks++
		d.monitor.Observe(time.Since(start))

		if d.logic.Done() {
			return false
		}
	}

	r := d.platform.Begin()
	d.logic.Draw(d.drawAccum.Seconds(), float64(d.tickAccum)/float64(d.tick), r)
	d.platform.End()
	d.drawAccum = 0
	d.frames++

	if !d.platform.Synchronized() {
		spare := min(d.tick-d.tickAccum, d.draw-d.drawAccum) - d.clock.Elapsed()
		if spare > 0 {
			d.sleep(spare)
		}
	}
	return true
}

// Run calls Frame until the logic is done or ctx is canceled.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Frame() {
			return nil
		}
	}
}
