package pong

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/proto-pong/internal/core"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

func quadBounds(qs []core.Quad) bounds {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, q := range qs {
		b.minX = math.Min(b.minX, q.Position.X-q.Size.X/2)
		b.maxX = math.Max(b.maxX, q.Position.X+q.Size.X/2)
		b.minY = math.Min(b.minY, q.Position.Y-q.Size.Y/2)
		b.maxY = math.Max(b.maxY, q.Position.Y+q.Size.Y/2)
	}
	return b
}

func TestLabelAlignment(t *testing.T) {
	// "I" is three units wide and centered in its nine unit cell.
	tests := []struct {
		name string
		h    HAlign
		v    VAlign
		want bounds
	}{
		{"left bottom", HAlignLeft, VAlignBottom, bounds{3, 6, 0, 7}},
		{"center middle", HAlignCenter, VAlignMiddle, bounds{-1.5, 1.5, -3.5, 3.5}},
		{"right top", HAlignRight, VAlignTop, bounds{-6, -3, -7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel(glyphAdvance, core.V(0, 0), core.ColorWhite, "I")
			l.SetAlign(tt.h, tt.v)
			got := quadBounds(l.Quads())
			assert.InDelta(t, tt.want.minX, got.minX, 1e-9)
			assert.InDelta(t, tt.want.maxX, got.maxX, 1e-9)
			assert.InDelta(t, tt.want.minY, got.minY, 1e-9)
			assert.InDelta(t, tt.want.maxY, got.maxY, 1e-9)
		})
	}
}

func TestLabelDefaultsCentered(t *testing.T) {
	l := NewLabel(5, core.V(10, 20), core.ColorBlue, "PONG")
	assert.Equal(t, HAlignCenter, l.HAlign())
	assert.Equal(t, VAlignMiddle, l.VAlign())

	b := quadBounds(l.Quads())
	assert.InDelta(t, 10, (b.minX+b.maxX)/2, 1e-9)
	assert.InDelta(t, 20, (b.minY+b.maxY)/2, 1e-9)
	for _, q := range l.Quads() {
		assert.Equal(t, core.ColorBlue, q.Color)
	}
}

func TestLabelCachesQuads(t *testing.T) {
	l := NewLabel(5, core.V(0, 0), core.ColorWhite, "0")

	var first, second core.QuadRecorder
	l.Draw(0, 0, &first)
	l.Draw(0, 0, &second)
	assert.Equal(t, 1, l.builds)
	assert.Equal(t, first.Quads, second.Quads)

	l.SetText("1")
	var third core.QuadRecorder
	l.Draw(0, 0, &third)
	assert.Equal(t, 2, l.builds)
	assert.NotEqual(t, first.Quads, third.Quads)

	l.SetHAlign(HAlignLeft)
	l.Draw(0, 0, &third)
	assert.Equal(t, 3, l.builds)

	l.SetVAlign(VAlignTop)
	l.Draw(0, 0, &third)
	l.Draw(0, 0, &third)
	assert.Equal(t, 4, l.builds)
}

func TestLabelRelayoutKeepsEarlierQuads(t *testing.T) {
	l := NewLabel(5, core.V(0, 0), core.ColorWhite, "10")
	held := l.Quads()
	snapshot := append([]core.Quad(nil), held...)

	l.SetText("7")
	l.SetHAlign(HAlignRight)
	require.NotEqual(t, snapshot, l.Quads())

	assert.Equal(t, snapshot, held)
}

func TestLabelSpacesAndUnknownRunesAdvance(t *testing.T) {
	l := NewLabel(glyphAdvance, core.V(0, 0), core.ColorWhite, "I I")
	l.SetAlign(HAlignLeft, VAlignBottom)
	spaced := quadBounds(l.Quads())
	assert.InDelta(t, 2*glyphAdvance+6, spaced.maxX, 1e-9)

	l.SetText("I~I")
	assert.Equal(t, spaced, quadBounds(l.Quads()))

	l.SetText("   ")
	assert.Empty(t, l.Quads())
}

func TestLabelLowercaseUsesUppercase(t *testing.T) {
	lower := NewLabel(5, core.V(0, 0), core.ColorWhite, "press")
	upper := NewLabel(5, core.V(0, 0), core.ColorWhite, "PRESS")
	assert.Equal(t, upper.Quads(), lower.Quads())
}

func TestGlyphBitmaps(t *testing.T) {
	for r, rows := range glyphBitmaps {
		require.Len(t, rows, glyphMaxHeight, "glyph %q", r)
		cells := 0
		for _, row := range rows {
			require.Equal(t, len(rows[0]), len(row), "glyph %q", r)
			require.LessOrEqual(t, len(row), glyphMaxWidth, "glyph %q", r)
			cells += strings.Count(row, "#")
		}

		g, ok := glyphFor(r)
		require.True(t, ok)
		area := 0
		for _, gr := range g.rects {
			area += gr.w * gr.h
		}
		assert.Equal(t, cells, area, "glyph %q rectangles must cover every cell once", r)
	}
}

func TestEveryOverlayTextIsRenderable(t *testing.T) {
	texts := []string{
		"PROTO", "PONG", "Press (1) for single player", "Press (2) for player vs player",
		"Press (h) to view controls", "Press (ESC) to exit", "Controls", "Right player:",
		"(up arrow) move up, (down arrow) move down", "Left player:", "(w) move up, (s) move down",
		"Press (ESC) to return", "Right player won!!!", "Left player won!!!",
		"Are you sure you want to quit?", "(Y)es  (N)o", "Press (SPACE) to continue",
	}
	for _, text := range texts {
		for _, r := range text {
			if r == ' ' {
				continue
			}
			_, ok := glyphFor(r)
			assert.True(t, ok, "missing glyph %q in %q", r, text)
		}
	}
}
