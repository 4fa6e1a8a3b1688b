package pong

import (
	"math"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// hitPaddle tests a ball of radius r at c against the vertical faces of p.
// It returns the contact point on the first face touched.
func hitPaddle(c core.Vec2, r float64, p *Paddle) (core.Vec2, bool) {
	// Broad phase: circle through the paddle corners.
	reach := p.size.Scale(0.5).Len() + r
	if c.Sub(p.position).Len2() > reach*reach {
		return core.Vec2{}, false
	}

	half := p.size.Scale(0.5)
	top, bottom := p.position.Y+half.Y, p.position.Y-half.Y

	left := [2]core.Vec2{core.V(p.position.X-half.X, top), core.V(p.position.X-half.X, bottom)}
	if pt, ok := hitSegment(c, r, left[0], left[1]); ok {
		return pt, true
	}
	right := [2]core.Vec2{core.V(p.position.X+half.X, top), core.V(p.position.X+half.X, bottom)}
	return hitSegment(c, r, right[0], right[1])
}

// hitSegment intersects a circle with segment ab. On a hit it returns the
// projection of the center onto the segment's line.
func hitSegment(c core.Vec2, r float64, a, b core.Vec2) (core.Vec2, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	l2 := ab.Len2()
	if l2 == 0 {
		return core.Vec2{}, false
	}

	// |ac - t*ab| = r  =>  l2*t^2 - 2*dot*t + (|ac|^2 - r^2) = 0
	dot := ac.Dot(ab)
	disc := dot*dot - l2*(ac.Len2()-r*r)
	if disc < 0 {
		return core.Vec2{}, false
	}
	root := math.Sqrt(disc)
	t0 := (dot - root) / l2
	t1 := (dot + root) / l2
	// Both crossings off the same end of the segment means no overlap.
	if t1 < 0 || t0 > 1 {
		return core.Vec2{}, false
	}
	return a.Add(ab.Scale(dot / l2)), true
}
