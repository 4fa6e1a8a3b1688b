package core

import "fmt"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA builds a color from its components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors for game elements.
var (
	ColorNone  = Color{}
	ColorWhite = RGBA(1.0, 1.0, 1.0, 1.0)
	ColorBlue  = RGBA(0.5, 0.8, 1.0, 1.0)
	ColorRed   = RGBA(1.0, 0.3, 0.3, 1.0)
	ColorGray  = RGBA(0.4, 0.4, 0.4, 1.0)
)

// IsZero reports whether c is fully transparent.
func (c Color) IsZero() bool {
	return c.A <= 0
}

// Hex returns the color as "#rrggbb", premultiplied by alpha over black.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R*c.A), channel(c.G*c.A), channel(c.B*c.A))
}

func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}
