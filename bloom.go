package bloom

import (
	"image/color"
	"math"
)

// Grid geometry. Cell indices are row-major: 0 1 2 / 3 4 5 / 6 7 8.
const (
	GridSide  = 3
	CellCount = GridSide * GridSide
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the color every cell fades toward.
var ColorBlack = Color{0, 0, 0, 1}

// Scale multiplies the RGB channels by k. Alpha is untouched and the result
// is not clamped.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

// Clamped returns c with every channel limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// RGB255 returns the clamped RGB channels as 8-bit values.
func (c Color) RGB255() (r, g, b uint8) {
	c = c.Clamped()
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)), uint8(math.Round(c.B * 255))
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	c = c.Clamped()
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // solid rectangle sized by ScaleX/ScaleY
	NodeTypeLabel                     // debug-font text
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
