package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// AITuning holds the computer opponent parameters. Times are in seconds and
// offsets are fractions of the paddle half-height or table height.
type AITuning struct {
	ReplanInterval float64
	DeadZone       float64
	HitBias        float64
	HitSpread      float64
	CenterJitter   float64
}

// DefaultAITuning returns the standard opponent.
func DefaultAITuning() AITuning {
	return AITuning{
		ReplanInterval: 0.3,
		DeadZone:       1,
		HitBias:        0.40,
		HitSpread:      0.20,
		CenterJitter:   0.10,
	}
}

// AI is a computer opponent. It periodically predicts where the ball will
// cross its paddle line and aims to hit it off-center to pick an angle.
// While the ball moves away it drifts back near the table center once.
type AI struct {
	tuning    AITuning
	rng       *rand.Rand
	started   bool
	back      bool
	elapsed   float64
	target    float64
	predicted float64
}

// NewAI creates an opponent drawing its jitter from rng. A nil rng disables
// jitter.
func NewAI(tuning AITuning, rng *rand.Rand) *AI {
	return &AI{tuning: tuning, rng: rng}
}

// Target returns the y-coordinate the paddle is heading for.
func (a *AI) Target() float64 { return a.target }

// Predicted returns the last predicted intercept height.
func (a *AI) Predicted() float64 { return a.predicted }

// Handle ignores input.
func (a *AI) Handle(core.Event) {}

// Update steers toward the target. The first update only heads for the table
// center; later ones re-plan once more than the interval has passed.
func (a *AI) Update(p *Paddle, t *Table, b *Ball, dt float64) {
	if !a.started {
		a.started = true
		a.target = t.position.Y
	}

	if a.elapsed > a.tuning.ReplanInterval {
		a.elapsed = 0
		a.plan(p, t, b)
	}
	a.elapsed += dt

	y := p.position.Y
	switch {
	case y < a.target-a.tuning.DeadZone:
		p.MoveUp()
	case y > a.target+a.tuning.DeadZone:
		p.MoveDown()
	default:
		p.Stop()
	}
}

func (a *AI) plan(p *Paddle, t *Table, b *Ball) {
	vx := b.velocity.X
	dx := p.position.X - b.position.X
	if vx != 0 && core.Sign(vx) == core.Sign(dx) {
		a.back = false
		y := b.position.Y + b.velocity.Y*(dx/vx)
		a.predicted = y
		if math.Abs(y-a.target) > a.tuning.DeadZone {
			offset := p.size.Y * 0.5 * (a.tuning.HitBias + a.uniform(-a.tuning.HitSpread, a.tuning.HitSpread))
			if y < p.position.Y {
				a.target = y + offset
			} else {
				a.target = y - offset
			}
		}
		return
	}

	if !a.back {
		j := a.tuning.CenterJitter * t.size.Y
		a.target = t.position.Y + a.uniform(-j, j)
		a.back = true
	}
}

func (a *AI) uniform(lo, hi float64) float64 {
	if a.rng == nil || hi <= lo {
		return (lo + hi) * 0.5
	}
	return lo + a.rng.Float64()*(hi-lo)
}
