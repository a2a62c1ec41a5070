// Package playground is the interactive bloom editor model: a pattern of
// frames edited cell by cell, timing and easing fields, and a color picked
// from presets, RGB channels or a hex string. Every edit bumps a revision
// that Preview uses to rebuild its live instance.
package playground

import (
	"math"
	"strconv"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/phanxgames/bloom"
)

// Custom is the preset selection shown once a field has been edited by hand.
const Custom = "(custom)"

// MaxMillis caps every timing field.
const MaxMillis = 10000

// p3Headroom keeps converted colors inside the Display P3 gamut edge.
const p3Headroom = 0.95

// Field names one of the four timing inputs.
type Field uint8

const (
	FieldStagger Field = iota
	FieldHold
	FieldFade
	FieldOffset
	numFields
)

var fieldNames = [numFields]string{"stagger", "hold", "fade", "offset"}

func (f Field) String() string {
	if f < numFields {
		return fieldNames[f]
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// Fields lists the timing fields in display order.
var Fields = []Field{FieldStagger, FieldHold, FieldFade, FieldOffset}

// Editor holds the playground state. Its zero value is not usable; call
// NewEditor.
type Editor struct {
	presets *bloom.Presets

	frames      bloom.Pattern
	active      int
	patternText string
	patternErr  error

	timing [numFields]int // milliseconds
	wrap   bool
	easing bloom.Easing
	rgb    [3]uint8

	animPreset   string
	swatchPreset string

	rev uint64
}

// NewEditor returns an editor loaded with the first animation and color
// preset of p (DefaultPresets when nil).
func NewEditor(p *bloom.Presets) *Editor {
	if p == nil {
		p = bloom.DefaultPresets()
	}
	e := &Editor{
		presets:      p,
		frames:       bloom.Pattern{{4}},
		easing:       bloom.EaseLinear,
		animPreset:   Custom,
		swatchPreset: Custom,
	}
	e.patternText = FormatPattern(e.frames)
	if names := p.AnimationNames(); len(names) > 0 {
		_ = e.LoadAnimationPreset(names[0])
	}
	if names := p.SwatchNames(); len(names) > 0 {
		_ = e.LoadSwatchPreset(names[0])
	}
	return e
}

// --- Pattern ---

// Frames returns a copy of the pattern.
func (e *Editor) Frames() bloom.Pattern {
	return e.frames.Clone()
}

// ActiveFrame returns the index of the frame the grid edits.
func (e *Editor) ActiveFrame() int {
	return e.active
}

// CellOn reports whether cell is part of the active frame.
func (e *Editor) CellOn(cell int) bool {
	for _, c := range e.frames[e.active] {
		if c == cell {
			return true
		}
	}
	return false
}

// ToggleCell adds cell to the active frame, or removes it if present.
// Indices outside the grid are ignored.
func (e *Editor) ToggleCell(cell int) {
	if cell < 0 || cell >= bloom.CellCount {
		return
	}
	frame := e.frames[e.active]
	idx := -1
	for i, c := range frame {
		if c == cell {
			idx = i
			break
		}
	}
	if idx >= 0 {
		frame = append(frame[:idx], frame[idx+1:]...)
	} else {
		frame = append(frame, cell)
	}
	e.frames[e.active] = frame
	e.patternEdited()
}

// AddFrame appends an empty frame and selects it.
func (e *Editor) AddFrame() {
	e.frames = append(e.frames, []int{})
	e.active = len(e.frames) - 1
	e.patternEdited()
}

// RemoveFrame deletes the active frame. The last remaining frame cannot be
// removed; it reports whether anything changed.
func (e *Editor) RemoveFrame() bool {
	if len(e.frames) <= 1 {
		return false
	}
	e.frames = append(e.frames[:e.active], e.frames[e.active+1:]...)
	if e.active >= len(e.frames) {
		e.active = len(e.frames) - 1
	}
	e.patternEdited()
	return true
}

// SelectFrame makes frame i the active frame. Out-of-range indices are
// ignored. Selecting is not an edit.
func (e *Editor) SelectFrame(i int) {
	if i < 0 || i >= len(e.frames) {
		return
	}
	e.active = i
}

// PatternText returns the JSON form of the pattern as last entered or
// generated.
func (e *Editor) PatternText() string {
	return e.patternText
}

// PatternError returns the parse error of the current pattern text, if any.
func (e *Editor) PatternError() error {
	return e.patternErr
}

// SetPatternText replaces the pattern from JSON. Invalid text is kept for
// further editing and reported by PatternError; the frames stay as they
// were and Build fails until the text parses.
func (e *Editor) SetPatternText(text string) {
	e.patternText = text
	e.animPreset = Custom
	e.rev++

	p, err := ParsePattern(text)
	if err != nil {
		e.patternErr = err
		return
	}
	e.patternErr = nil
	e.frames = p
	if e.active >= len(e.frames) {
		e.active = len(e.frames) - 1
	}
}

// patternEdited regenerates the text from the frames after a grid edit.
func (e *Editor) patternEdited() {
	e.patternText = FormatPattern(e.frames)
	e.patternErr = nil
	e.animPreset = Custom
	e.rev++
}

// --- Timing ---

// Timing returns field f in milliseconds.
func (e *Editor) Timing(f Field) int {
	if f >= numFields {
		return 0
	}
	return e.timing[f]
}

// SetTiming sets field f, clamped to [0, MaxMillis].
func (e *Editor) SetTiming(f Field, ms int) {
	if f >= numFields {
		return
	}
	e.timing[f] = clampMillis(ms)
	e.animPreset = Custom
	e.rev++
}

// SetTimingText sets field f from user input. Text that is not a number
// counts as 0.
func (e *Editor) SetTimingText(f Field, text string) {
	e.SetTiming(f, ParseMillis(text))
}

// AdjustTiming moves field f by delta milliseconds.
func (e *Editor) AdjustTiming(f Field, delta int) {
	e.SetTiming(f, e.Timing(f)+delta)
}

func (e *Editor) SetStagger(ms int) { e.SetTiming(FieldStagger, ms) }
func (e *Editor) SetHold(ms int)    { e.SetTiming(FieldHold, ms) }
func (e *Editor) SetFade(ms int)    { e.SetTiming(FieldFade, ms) }
func (e *Editor) SetOffset(ms int)  { e.SetTiming(FieldOffset, ms) }

// ParseMillis reads a millisecond count the way a number input does:
// fractions are truncated, garbage and negatives become 0, and values above
// MaxMillis are capped.
func ParseMillis(text string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > MaxMillis {
		return MaxMillis
	}
	return int(v)
}

func clampMillis(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxMillis {
		return MaxMillis
	}
	return ms
}

// Wrap reports whether frames overlap cyclically.
func (e *Editor) Wrap() bool {
	return e.wrap
}

// SetWrap sets wrap mode.
func (e *Editor) SetWrap(on bool) {
	e.wrap = on
	e.animPreset = Custom
	e.rev++
}

// Easing returns the fade curve.
func (e *Editor) Easing() bloom.Easing {
	return e.easing
}

// SetEasing selects the fade curve.
func (e *Editor) SetEasing(kind bloom.Easing) {
	e.easing = kind
	e.animPreset = Custom
	e.rev++
}

// CycleEasing advances to the next curve in bloom.Easings.
func (e *Editor) CycleEasing() {
	e.SetEasing(e.easing.Next())
}

// --- Color ---

// RGB returns the current sRGB color.
func (e *Editor) RGB() [3]uint8 {
	return e.rgb
}

// SetRGB sets the color, clamping each channel to 0-255.
func (e *Editor) SetRGB(r, g, b int) {
	e.rgb = [3]uint8{clampChannel(r), clampChannel(g), clampChannel(b)}
	e.swatchPreset = Custom
	e.rev++
}

// AdjustChannel moves one channel (0 R, 1 G, 2 B) by delta.
func (e *Editor) AdjustChannel(ch, delta int) {
	if ch < 0 || ch > 2 {
		return
	}
	c := [3]int{int(e.rgb[0]), int(e.rgb[1]), int(e.rgb[2])}
	c[ch] += delta
	e.SetRGB(c[0], c[1], c[2])
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the color as "#rrggbb".
func (e *Editor) Hex() string {
	return colorful.Color{
		R: float64(e.rgb[0]) / 255,
		G: float64(e.rgb[1]) / 255,
		B: float64(e.rgb[2]) / 255,
	}.Hex()
}

// SetHex sets the color from "#rrggbb".
func (e *Editor) SetHex(s string) error {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return errors.Wrapf(err, "playground: color %q", s)
	}
	r, g, b := c.RGB255()
	e.rgb = [3]uint8{r, g, b}
	e.swatchPreset = Custom
	e.rev++
	return nil
}

// SRGBToP3 derives the wide-gamut triple for a hand-picked color.
func SRGBToP3(rgb [3]uint8) [3]float64 {
	var p3 [3]float64
	for i, v := range rgb {
		p3[i] = float64(v) / 255 * p3Headroom
	}
	return p3
}

// --- Presets ---

// AnimationPreset returns the selected animation preset name or Custom.
func (e *Editor) AnimationPreset() string {
	return e.animPreset
}

// SwatchPreset returns the selected color preset name or Custom.
func (e *Editor) SwatchPreset() string {
	return e.swatchPreset
}

// LoadAnimationPreset copies the named preset into every animation field.
// Selecting Custom changes nothing.
func (e *Editor) LoadAnimationPreset(name string) error {
	if name == Custom {
		return nil
	}
	a, err := e.presets.Animation(name)
	if err != nil {
		return err
	}
	e.frames = a.Pattern
	if len(e.frames) == 0 {
		e.frames = bloom.Pattern{{}}
	}
	if e.active >= len(e.frames) {
		e.active = len(e.frames) - 1
	}
	e.patternText = FormatPattern(e.frames)
	e.patternErr = nil
	e.timing = [numFields]int{
		int(a.Stagger.Milliseconds()),
		int(a.Hold.Milliseconds()),
		int(a.Fade.Milliseconds()),
		int(a.Offset.Milliseconds()),
	}
	e.wrap = a.Wrap
	e.easing = a.Easing
	e.animPreset = name
	e.rev++
	return nil
}

// LoadSwatchPreset copies the named color preset's sRGB value.
func (e *Editor) LoadSwatchPreset(name string) error {
	if name == Custom {
		return nil
	}
	s, err := e.presets.Swatch(name)
	if err != nil {
		return err
	}
	e.rgb = s.SRGB
	e.swatchPreset = name
	e.rev++
	return nil
}

// CycleAnimationPreset loads the preset step places after the current one,
// wrapping around. From Custom it starts at the first preset.
func (e *Editor) CycleAnimationPreset(step int) error {
	return e.LoadAnimationPreset(cycleName(e.presets.AnimationNames(), e.animPreset, step))
}

// CycleSwatchPreset is CycleAnimationPreset for colors.
func (e *Editor) CycleSwatchPreset(step int) error {
	return e.LoadSwatchPreset(cycleName(e.presets.SwatchNames(), e.swatchPreset, step))
}

func cycleName(names []string, current string, step int) string {
	if len(names) == 0 {
		return Custom
	}
	for i, n := range names {
		if n == current {
			j := ((i+step)%len(names) + len(names)) % len(names)
			return names[j]
		}
	}
	return names[0]
}

// --- Output ---

// Revision increases with every edit.
func (e *Editor) Revision() uint64 {
	return e.rev
}

// Build assembles the edited animation and color into a Config. It fails
// while the pattern text does not parse.
func (e *Editor) Build() (bloom.Config, error) {
	if e.patternErr != nil {
		return bloom.Config{}, errors.Wrap(e.patternErr, "playground: build")
	}
	ms := func(f Field) time.Duration {
		return time.Duration(e.timing[f]) * time.Millisecond
	}
	return bloom.Config{
		Animation: bloom.Animation{
			Pattern: e.frames.Clone(),
			Stagger: ms(FieldStagger),
			Hold:    ms(FieldHold),
			Fade:    ms(FieldFade),
			Offset:  ms(FieldOffset),
			Wrap:    e.wrap,
			Easing:  e.easing,
		},
		Swatch: bloom.Swatch{SRGB: e.rgb, P3: SRGBToP3(e.rgb)},
	}, nil
}
