package bloom

// Filter is the interface for color adjustments applied to a node when it is
// drawn. Filters compose by multiplying their scales.
type Filter interface {
	// ColorScale returns per-channel multipliers for R, G, B and A.
	ColorScale() (r, g, b, a float64)
}

// --- BrightnessFilter ---

// BrightnessFilter multiplies RGB by Amount, like CSS brightness(). Values
// above 1 brighten and are clipped by the display.
type BrightnessFilter struct {
	Amount float64
}

// NewBrightnessFilter creates a brightness filter with the given multiplier.
func NewBrightnessFilter(amount float64) *BrightnessFilter {
	return &BrightnessFilter{Amount: amount}
}

// ColorScale implements Filter.
func (f *BrightnessFilter) ColorScale() (r, g, b, a float64) {
	return f.Amount, f.Amount, f.Amount, 1
}

// --- ColorMatrixFilter ---

// ColorMatrixFilter scales each channel independently. The identity leaves
// colors unchanged.
type ColorMatrixFilter struct {
	Scale [4]float64
}

// NewColorMatrixFilter creates a color matrix filter initialized to the identity.
func NewColorMatrixFilter() *ColorMatrixFilter {
	return &ColorMatrixFilter{Scale: [4]float64{1, 1, 1, 1}}
}

// SetBrightness sets the RGB multipliers to b, leaving alpha at 1.
func (f *ColorMatrixFilter) SetBrightness(b float64) {
	f.Scale = [4]float64{b, b, b, 1}
}

// SetTint multiplies RGB by the channels of c.
func (f *ColorMatrixFilter) SetTint(c Color) {
	f.Scale = [4]float64{c.R, c.G, c.B, 1}
}

// ColorScale implements Filter.
func (f *ColorMatrixFilter) ColorScale() (r, g, b, a float64) {
	return f.Scale[0], f.Scale[1], f.Scale[2], f.Scale[3]
}

// filteredColor applies every filter in fs to c. The result is not clamped.
func filteredColor(c Color, fs []Filter) Color {
	for _, f := range fs {
		r, g, b, a := f.ColorScale()
		c = Color{c.R * r, c.G * g, c.B * b, c.A * a}
	}
	return c
}
