package pong

import (
	"unicode/utf8"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// HAlign places text horizontally relative to the label position.
type HAlign int

const (
	HAlignCenter HAlign = iota
	HAlignLeft
	HAlignRight
)

// VAlign places text vertically relative to the label position.
type VAlign int

const (
	VAlignMiddle VAlign = iota
	VAlignTop
	VAlignBottom
)

// Label draws text with the block font. Width is the advance of one
// character in world units; glyphs scale with it.
type Label struct {
	entity
	width    float64
	position core.Vec2
	color    core.Color
	hAlign   HAlign
	vAlign   VAlign
	text     string

	quads  []core.Quad
	dirty  bool
	builds int
}

// NewLabel creates a centered label.
func NewLabel(width float64, position core.Vec2, color core.Color, text string) *Label {
	return &Label{
		entity:   entity{kind: KindLabel},
		width:    width,
		position: position,
		color:    color,
		text:     text,
		dirty:    true,
	}
}

func (l *Label) Text() string        { return l.text }
func (l *Label) Width() float64      { return l.width }
func (l *Label) Position() core.Vec2 { return l.position }
func (l *Label) Color() core.Color   { return l.color }
func (l *Label) HAlign() HAlign      { return l.hAlign }
func (l *Label) VAlign() VAlign      { return l.vAlign }

// SetText replaces the text.
func (l *Label) SetText(text string) {
	l.text = text
	l.dirty = true
}

// SetHAlign changes the horizontal alignment.
func (l *Label) SetHAlign(a HAlign) {
	l.hAlign = a
	l.dirty = true
}

// SetVAlign changes the vertical alignment.
func (l *Label) SetVAlign(a VAlign) {
	l.vAlign = a
	l.dirty = true
}

// SetAlign changes both alignments.
func (l *Label) SetAlign(h HAlign, v VAlign) {
	l.hAlign = h
	l.vAlign = v
	l.dirty = true
}

// Quads returns the laid out rectangles, rebuilding them if the label
// changed. Callers must not modify the slice. A rebuild allocates a new one,
// so slices returned earlier stay unchanged.
func (l *Label) Quads() []core.Quad {
	if l.dirty {
		l.layout()
	}
	return l.quads
}

// Draw queues the cached rectangles.
func (l *Label) Draw(_, _ float64, r core.Renderer) {
	for _, q := range l.Quads() {
		r.QueueQuad(q.Position, q.Size, q.Color)
	}
}

func (l *Label) layout() {
	l.quads = make([]core.Quad, 0, len(l.quads))
	l.dirty = false
	l.builds++

	n := float64(utf8.RuneCountInString(l.text))
	scale := l.width / glyphAdvance

	var ox float64
	switch l.hAlign {
	case HAlignCenter:
		ox = -n * l.width * 0.5
	case HAlignRight:
		ox = -n * l.width
	}

	var oy float64
	switch l.vAlign {
	case VAlignTop:
		oy = -glyphMaxHeight * scale
	case VAlignMiddle:
		oy = -glyphMaxHeight * scale * 0.5
	}

	i := 0
	for _, r := range l.text {
		pen := ox + l.width*float64(i)
		i++
		g, ok := glyphFor(r)
		if !ok {
			continue
		}
		pad := float64(glyphAdvance-g.width) * 0.5
		for _, gr := range g.rects {
			w := float64(gr.w) * scale
			h := float64(gr.h) * scale
			center := core.V(
				(float64(gr.x)+pad)*scale+w*0.5+pen,
				float64(gr.y)*scale+h*0.5+oy,
			)
			l.quads = append(l.quads, core.Quad{
				Position: l.position.Add(center),
				Size:     core.V(w, h),
				Color:    l.color,
			})
		}
	}
}
