package core

import (
	"strings"
)

// Screen is a 2D pixel buffer that rectangles are rasterized into.
// It decouples rasterization from the terminal: the platform decides how
// pixels map onto character cells.
type Screen struct {
	width  int
	height int
	cells  [][]Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every pixel to transparent.
func (s *Screen) Clear() {
	s.Fill(ColorNone)
}

// Fill sets every pixel to c.
func (s *Screen) Fill(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set colors the pixel at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the pixel at the given position.
// Returns ColorNone for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorNone
	}
	return s.cells[y][x]
}

// FillRect colors a rectangular area, clipped to the screen.
func (s *Screen) FillRect(r Rect, c Color) {
	x0, x1 := Clamp(r.X, 0, s.width), Clamp(r.Right(), 0, s.width)
	y0, y1 := Clamp(r.Y, 0, s.height), Clamp(r.Bottom(), 0, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y][x] = c
		}
	}
}

// String renders the buffer as text, '#' for colored pixels and ' ' otherwise.
// Each row is joined with newlines. Useful for tests and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row rendered like String.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	row := make([]byte, s.width)
	for x, c := range s.cells[y] {
		if c.IsZero() {
			row[x] = ' '
		} else {
			row[x] = '#'
		}
	}
	return string(row)
}
