package pong

import (
	"github.com/vovakirdan/proto-pong/internal/core"
)

const step = 1.0 / 60.0

// countingOwner counts bounce sounds.
type countingOwner struct {
	plays int
}

func (o *countingOwner) Audio() core.Audio {
	return core.AudioFunc(func() { o.plays++ })
}

type rig struct {
	owner   *countingOwner
	scene   *Scene
	table   *Table
	paddleA *Paddle
	paddleB *Paddle
	ball    *Ball
}

// newRig builds a standard match layout with the given controllers.
func newRig(ca, cb Controller) *rig {
	r := &rig{owner: &countingOwner{}}
	r.scene = NewScene(r.owner)
	r.table = NewTable(tablePosition, tableSize)
	r.paddleA = NewPaddle(ca, core.V(r.table.Right()-paddleInset, r.table.Position().Y), paddleSize)
	r.paddleB = NewPaddle(cb, core.V(r.table.Left()+paddleInset, r.table.Position().Y), paddleSize)
	r.ball = NewBall(r.table.Position(), ballRadius)

	tr := r.scene.Append(r.table)
	ar := r.scene.Append(r.paddleA)
	br := r.scene.Append(r.paddleB)
	ballRef := r.scene.Append(r.ball)
	r.paddleA.Setup(tr, ballRef)
	r.paddleB.Setup(tr, ballRef)
	r.ball.Setup(tr, ar, br)
	return r
}

func newHumanRig() *rig {
	return newRig(NewHuman(SideA), NewHuman(SideB))
}
