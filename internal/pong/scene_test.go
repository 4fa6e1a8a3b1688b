package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/proto-pong/internal/core"
)

func TestSceneAppendAndResolve(t *testing.T) {
	s := NewScene(nil)
	tbl := NewTable(core.V(0, 0), core.V(10, 10))
	lbl := NewLabel(5, core.V(0, 0), core.ColorWhite, "hi")

	tr := s.Append(tbl)
	lr := s.Append(lbl)

	assert.Equal(t, 2, s.Len())
	assert.True(t, tr.Valid())
	assert.Same(t, s, tbl.Scene())

	e, ok := s.At(lr)
	require.True(t, ok)
	assert.Equal(t, KindLabel, e.Kind())

	got, ok := lookup[*Table](s, tr)
	require.True(t, ok)
	assert.Same(t, tbl, got)

	_, ok = lookup[*Ball](s, tr)
	assert.False(t, ok, "wrong concrete type must not resolve")
}

func TestSceneZeroRefInvalid(t *testing.T) {
	s := NewScene(nil)
	s.Append(NewTable(core.V(0, 0), core.V(10, 10)))

	var r Ref
	assert.False(t, r.Valid())
	_, ok := s.At(r)
	assert.False(t, ok)
}

func TestSceneClearInvalidatesRefs(t *testing.T) {
	s := NewScene(nil)
	tbl := NewTable(core.V(0, 0), core.V(10, 10))
	r := s.Append(tbl)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Nil(t, tbl.Scene())
	_, ok := s.At(r)
	assert.False(t, ok)

	// A new entity at the same index must not answer to the old ref.
	s.Append(NewTable(core.V(1, 1), core.V(10, 10)))
	_, ok = s.At(r)
	assert.False(t, ok)
}

func TestMustLookupPanics(t *testing.T) {
	s := NewScene(nil)
	r := s.Append(NewTable(core.V(0, 0), core.V(10, 10)))
	s.Clear()

	assert.PanicsWithValue(t,
		"pong: unresolved *pong.Table reference (used before setup or after teardown)",
		func() { mustLookup[*Table](s, r) })
}

func TestSceneUpdateAndDrawInOrder(t *testing.T) {
	s := NewScene(nil)
	s.Append(NewTable(core.V(0, 0), core.V(10, 10)))
	s.Append(NewLabel(9, core.V(0, 0), core.ColorRed, "I"))

	var rec core.QuadRecorder
	s.Update(step)
	s.Draw(step, 1, &rec)

	require.Greater(t, rec.Len(), 5)
	// Table outline first, label quads last.
	assert.Equal(t, core.ColorWhite, rec.Quads[0].Color)
	assert.Equal(t, core.ColorRed, rec.Quads[rec.Len()-1].Color)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "paddle", KindPaddle.String())
	assert.Equal(t, "ball", KindBall.String())
	assert.Equal(t, "table", KindTable.String())
	assert.Equal(t, "label", KindLabel.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
