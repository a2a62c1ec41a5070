package bloom

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gamut selects which of a Swatch's two representations is rendered.
type Gamut uint8

const (
	GamutStandard Gamut = iota // 8-bit sRGB
	GamutWide                  // floating point Display P3
)

func (g Gamut) String() string {
	if g == GamutWide {
		return "wide"
	}
	return "standard"
}

// DetectGamut reports whether the environment advertises wide color output.
// It reads COLORTERM, terminal-specific variables, and TERM the way 24-bit
// capable emulators announce themselves. Call it once at startup and pass the
// result to NewInterpolator.
func DetectGamut() Gamut {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return GamutWide
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" {
		return GamutWide
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return GamutWide
	}
	return GamutStandard
}

// Swatch is one hue in both gamuts. Both triples describe the fully lit
// state; fading always moves toward black.
type Swatch struct {
	SRGB [3]uint8   // standard gamut, 0-255
	P3   [3]float64 // wide gamut, 0-1
}

// Paint is a renderable color produced by an Interpolator. Only the triple
// matching Gamut is meaningful.
type Paint struct {
	Gamut Gamut
	SRGB  [3]uint8
	P3    [3]float64
}

// String renders p as a CSS color expression: "color(display-p3 r g b)" in
// the wide gamut, "rgb(r,g,b)" otherwise.
func (p Paint) String() string {
	if p.Gamut == GamutWide {
		return "color(display-p3 " +
			strconv.FormatFloat(p.P3[0], 'g', -1, 64) + " " +
			strconv.FormatFloat(p.P3[1], 'g', -1, 64) + " " +
			strconv.FormatFloat(p.P3[2], 'g', -1, 64) + ")"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", p.SRGB[0], p.SRGB[1], p.SRGB[2])
}

// IsBlack reports whether every active channel is zero.
func (p Paint) IsBlack() bool {
	if p.Gamut == GamutWide {
		return p.P3 == [3]float64{}
	}
	return p.SRGB == [3]uint8{}
}

// Color converts p to an opaque sRGB Color for drawing. Wide-gamut values
// are mapped from Display P3 into sRGB and clipped.
func (p Paint) Color() Color {
	if p.Gamut == GamutWide {
		return displayP3ToSRGB(p.P3)
	}
	return Color{
		R: float64(p.SRGB[0]) / 255,
		G: float64(p.SRGB[1]) / 255,
		B: float64(p.SRGB[2]) / 255,
		A: 1,
	}
}

// Interpolator fades swatches toward black in one fixed gamut.
type Interpolator struct {
	gamut Gamut
}

// NewInterpolator returns an interpolator emitting colors in gamut g.
func NewInterpolator(g Gamut) Interpolator {
	return Interpolator{gamut: g}
}

// Gamut returns the gamut the interpolator was built with.
func (ip Interpolator) Gamut() Gamut {
	return ip.gamut
}

// At returns s faded toward black by fraction t (0 = fully lit, 1 = black).
func (ip Interpolator) At(t float64, s Swatch) Paint {
	k := 1 - clamp01(t)
	p := Paint{Gamut: ip.gamut}
	if ip.gamut == GamutWide {
		for i, v := range s.P3 {
			p.P3[i] = v * k
		}
		return p
	}
	for i, v := range s.SRGB {
		p.SRGB[i] = uint8(math.Round(float64(v) * k))
	}
	return p
}

// Linear Display P3 to linear sRGB (D65 white in both spaces).
var p3ToSRGBMatrix = [3][3]float64{
	{1.2249401, -0.2249404, 0.0000000},
	{-0.0420569, 1.0420571, 0.0000000},
	{-0.0196376, -0.0786361, 1.0982735},
}

// displayP3ToSRGB converts encoded P3 channels to a clipped sRGB Color. Both
// spaces share the sRGB transfer curve, so go-colorful handles the encoding.
func displayP3ToSRGB(p3 [3]float64) Color {
	lr, lg, lb := colorful.Color{R: p3[0], G: p3[1], B: p3[2]}.LinearRgb()
	m := p3ToSRGBMatrix
	c := colorful.LinearRgb(
		m[0][0]*lr+m[0][1]*lg+m[0][2]*lb,
		m[1][0]*lr+m[1][1]*lg+m[1][2]*lb,
		m[2][0]*lr+m[2][1]*lg+m[2][2]*lb,
	).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
