package bloom

import (
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownPreset is wrapped by every failed preset lookup.
var ErrUnknownPreset = errors.New("bloom: unknown preset")

// NamedAnimation is one entry of an animation preset table.
type NamedAnimation struct {
	Name      string
	Animation Animation
}

// NamedSwatch is one entry of a color preset table.
type NamedSwatch struct {
	Name   string
	Swatch Swatch
}

// Presets holds immutable animation and color tables keyed by name. Lookups
// return copies, so callers can never modify the tables.
type Presets struct {
	animations     map[string]Animation
	swatches       map[string]Swatch
	animationNames []string
	swatchNames    []string
}

// NewPresets builds preset tables from ordered entries. Names must be
// non-empty and unique within each table.
func NewPresets(animations []NamedAnimation, swatches []NamedSwatch) (*Presets, error) {
	p := &Presets{
		animations: make(map[string]Animation, len(animations)),
		swatches:   make(map[string]Swatch, len(swatches)),
	}
	for _, a := range animations {
		if a.Name == "" {
			return nil, errors.New("bloom: animation preset without a name")
		}
		if _, dup := p.animations[a.Name]; dup {
			return nil, errors.Errorf("bloom: duplicate animation preset %q", a.Name)
		}
		p.animations[a.Name] = a.Animation.Clone()
		p.animationNames = append(p.animationNames, a.Name)
	}
	for _, s := range swatches {
		if s.Name == "" {
			return nil, errors.New("bloom: color preset without a name")
		}
		if _, dup := p.swatches[s.Name]; dup {
			return nil, errors.Errorf("bloom: duplicate color preset %q", s.Name)
		}
		p.swatches[s.Name] = s.Swatch
		p.swatchNames = append(p.swatchNames, s.Name)
	}
	return p, nil
}

// Animation returns a copy of the named animation preset.
func (p *Presets) Animation(name string) (Animation, error) {
	a, ok := p.animations[name]
	if !ok {
		return Animation{}, errors.Wrapf(ErrUnknownPreset, "animation %q", name)
	}
	return a.Clone(), nil
}

// Swatch returns the named color preset.
func (p *Presets) Swatch(name string) (Swatch, error) {
	s, ok := p.swatches[name]
	if !ok {
		return Swatch{}, errors.Wrapf(ErrUnknownPreset, "color %q", name)
	}
	return s, nil
}

// AnimationNames returns animation preset names in declaration order.
func (p *Presets) AnimationNames() []string {
	return append([]string(nil), p.animationNames...)
}

// SwatchNames returns color preset names in declaration order.
func (p *Presets) SwatchNames() []string {
	return append([]string(nil), p.swatchNames...)
}

var defaultPresets = mustPresets(NewPresets(builtinAnimations(), builtinSwatches()))

// DefaultPresets returns the built-in preset tables. The value is shared and
// read-only.
func DefaultPresets() *Presets {
	return defaultPresets
}

func mustPresets(p *Presets, err error) *Presets {
	if err != nil {
		panic(err)
	}
	return p
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func builtinAnimations() []NamedAnimation {
	return []NamedAnimation{
		{"loading", Animation{
			Pattern: Pattern{{1}, {2}, {5}, {8}, {7}, {6}, {3}, {0}},
			Stagger: ms(180), Hold: ms(350), Fade: ms(350), Offset: 0,
			Wrap: true, Easing: EaseLinear,
		}},
		{"computing", Animation{
			Pattern: Pattern{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}},
			Stagger: ms(350), Hold: ms(400), Fade: ms(400), Offset: ms(500),
			Wrap: true, Easing: EaseInOut,
		}},
		{"downloading", Animation{
			Pattern: Pattern{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
			Stagger: ms(380), Hold: ms(380), Fade: ms(380), Offset: ms(1000),
			Wrap: false, Easing: EaseLinear,
		}},
		{"searching", Animation{
			Pattern: Pattern{{4}, {1, 3, 5, 7}, {0, 2, 6, 8}},
			Stagger: ms(190), Hold: ms(420), Fade: ms(360), Offset: ms(1500),
			Wrap: false, Easing: EaseOut,
		}},
		{"processing", Animation{
			Pattern: Pattern{{0, 1, 2, 5, 4, 3, 6, 7, 8}},
			Stagger: ms(170), Hold: ms(360), Fade: ms(420), Offset: ms(2000),
			Wrap: false, Easing: EaseIn,
		}},
		{"compiling", Animation{
			Pattern: Pattern{{0}, {3}, {6}, {7}, {8}, {5}, {2}, {1}},
			Stagger: ms(210), Hold: ms(340), Fade: ms(380), Offset: ms(2500),
			Wrap: true, Easing: EaseLinear,
		}},
		{"rendering", Animation{
			Pattern: Pattern{{0, 2, 6, 8}, {1, 3, 5, 7}, {4}},
			Stagger: ms(185), Hold: ms(400), Fade: ms(350), Offset: ms(3000),
			Wrap: false, Easing: EaseIn,
		}},
		{"syncing", Animation{
			Pattern: Pattern{{0, 8}, {2, 6}, {4}, {1, 3, 5, 7}},
			Stagger: ms(175), Hold: ms(380), Fade: ms(400), Offset: ms(3500),
			Wrap: true, Easing: EaseInOut,
		}},
		{"uploading", Animation{
			Pattern: Pattern{{6, 7, 8}, {3, 4, 5}, {0, 1, 2}},
			Stagger: ms(370), Hold: ms(360), Fade: ms(360), Offset: ms(4000),
			Wrap: false, Easing: EaseLinear,
		}},
		{"decrypting", Animation{
			Pattern: Pattern{{0, 2, 4, 6, 8}, {1, 3, 5, 7}},
			Stagger: ms(165), Hold: ms(420), Fade: ms(380), Offset: ms(4500),
			Wrap: true, Easing: EaseOut,
		}},
		{"analyzing", Animation{
			Pattern: Pattern{{2, 5, 8}, {1, 4, 7}, {0, 3, 6}},
			Stagger: ms(370), Hold: ms(370), Fade: ms(400), Offset: ms(5000),
			Wrap: true, Easing: EaseInOut,
		}},
		{"indexing", Animation{
			Pattern: Pattern{{4}, {0, 8}, {2, 6}, {1, 7}, {3, 5}},
			Stagger: ms(180), Hold: ms(390), Fade: ms(370), Offset: ms(5500),
			Wrap: false, Easing: EaseOut,
		}},
	}
}

func builtinSwatches() []NamedSwatch {
	return []NamedSwatch{
		{"cyan", Swatch{SRGB: [3]uint8{0, 255, 255}, P3: [3]float64{0, 0.92, 0.92}}},
		{"magenta", Swatch{SRGB: [3]uint8{255, 0, 255}, P3: [3]float64{0.92, 0, 0.92}}},
		{"green", Swatch{SRGB: [3]uint8{57, 255, 20}, P3: [3]float64{0.25, 0.95, 0.1}}},
		{"blue", Swatch{SRGB: [3]uint8{68, 102, 255}, P3: [3]float64{0.28, 0.42, 0.98}}},
		{"orange", Swatch{SRGB: [3]uint8{255, 102, 0}, P3: [3]float64{0.95, 0.42, 0}}},
		{"yellow", Swatch{SRGB: [3]uint8{255, 224, 0}, P3: [3]float64{0.95, 0.88, 0}}},
		{"purple", Swatch{SRGB: [3]uint8{191, 0, 255}, P3: [3]float64{0.72, 0, 0.95}}},
		{"red", Swatch{SRGB: [3]uint8{255, 0, 51}, P3: [3]float64{0.95, 0, 0.22}}},
		{"mint", Swatch{SRGB: [3]uint8{0, 255, 127}, P3: [3]float64{0, 0.95, 0.52}}},
		{"coral", Swatch{SRGB: [3]uint8{255, 107, 107}, P3: [3]float64{0.95, 0.44, 0.44}}},
		{"lavender", Swatch{SRGB: [3]uint8{207, 159, 255}, P3: [3]float64{0.78, 0.62, 0.95}}},
		{"gold", Swatch{SRGB: [3]uint8{255, 215, 0}, P3: [3]float64{0.95, 0.84, 0}}},
	}
}
