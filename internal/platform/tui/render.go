package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// Rasterizer is a core.Renderer that paints world rectangles onto a pixel
// Screen. Each terminal cell holds two pixels stacked vertically, and the
// world view is letterboxed to keep its aspect ratio.
type Rasterizer struct {
	screen *core.Screen
	view   core.Vec2
	scale  float64
	offset core.Vec2
}

// NewRasterizer creates a rasterizer for a cols x rows cell area showing
// view world units centered on the origin.
func NewRasterizer(cols, rows int, view core.Vec2) *Rasterizer {
	r := &Rasterizer{screen: core.NewScreen(0, 0), view: view}
	r.Resize(cols, rows)
	return r
}

// Resize adapts to a new cell area.
func (r *Rasterizer) Resize(cols, rows int) {
	w, h := max(cols, 0), max(rows, 0)*2
	r.screen.Resize(w, h)
	r.scale = math.Min(float64(w)/r.view.X, float64(h)/r.view.Y)
	r.offset = core.V(
		(float64(w)-r.view.X*r.scale)*0.5,
		(float64(h)-r.view.Y*r.scale)*0.5,
	)
}

// Screen returns the pixel buffer.
func (r *Rasterizer) Screen() *core.Screen {
	return r.screen
}

// Clear erases the pixel buffer.
func (r *Rasterizer) Clear() {
	r.screen.Clear()
}

// PixelRect maps a world rectangle to pixels. Non-empty rectangles cover at
// least one pixel so thin lines stay visible.
func (r *Rasterizer) PixelRect(position, size core.Vec2) core.Rect {
	toX := func(x float64) int {
		return int(math.Round(r.offset.X + (x+r.view.X*0.5)*r.scale))
	}
	toY := func(y float64) int {
		return int(math.Round(r.offset.Y + (r.view.Y*0.5-y)*r.scale))
	}

	x0, x1 := toX(position.X-size.X*0.5), toX(position.X+size.X*0.5)
	y0, y1 := toY(position.Y+size.Y*0.5), toY(position.Y-size.Y*0.5)
	if x1 <= x0 && size.X > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && size.Y > 0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// QueueQuad paints the rectangle immediately.
func (r *Rasterizer) QueueQuad(position, size core.Vec2, color core.Color) {
	r.screen.FillRect(r.PixelRect(position, size), color)
}

// cellPair is the content of one terminal cell.
type cellPair struct {
	top, bottom core.Color
}

// styleCache avoids rebuilding lipgloss styles for repeated color pairs.
type styleCache map[cellPair]lipgloss.Style

func (c styleCache) style(p cellPair) lipgloss.Style {
	if s, ok := c[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	switch {
	case p.top.IsZero() && !p.bottom.IsZero():
		s = s.Foreground(lipgloss.Color(p.bottom.Hex()))
	case !p.top.IsZero():
		s = s.Foreground(lipgloss.Color(p.top.Hex()))
		if !p.bottom.IsZero() && p.bottom != p.top {
			s = s.Background(lipgloss.Color(p.bottom.Hex()))
		}
	}
	c[p] = s
	return s
}

// glyph picks the block character showing the pair.
func (p cellPair) glyph() string {
	switch {
	case p.top.IsZero() && p.bottom.IsZero():
		return " "
	case p.top == p.bottom:
		return "█"
	case p.top.IsZero():
		return "▄"
	default:
		return "▀"
	}
}

// RenderScreen converts a pixel Screen to styled half-block text.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	rows := (s.Height() + 1) / 2
	sb.Grow(s.Width()*rows*2 + rows)

	pair := func(x, y int) cellPair {
		return cellPair{top: s.Get(x, 2*y), bottom: s.Get(x, 2*y+1)}
	}

	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := pair(x, y)

			var run strings.Builder
			for x < s.Width() {
				p := pair(x, y)
				if p != start {
					break
				}
				run.WriteString(p.glyph())
				x++
			}

			if start.top.IsZero() && start.bottom.IsZero() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
