package bloom

import (
	"time"

	"github.com/pkg/errors"
)

// Pattern is an ordered list of frames; each frame is the set of cell
// indices (0-8, row-major) that light up together. Frame order is stagger
// order. A frame may be empty.
type Pattern [][]int

// Clone returns a deep copy of p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	for i, frame := range p {
		out[i] = append([]int(nil), frame...)
	}
	return out
}

// Animation is the pattern plus its timing.
type Animation struct {
	Pattern Pattern
	Stagger time.Duration // between successive frame activations
	Hold    time.Duration // at full intensity before fading
	Fade    time.Duration // fade-out duration
	Offset  time.Duration // added to the instance clock
	Wrap    bool          // frames overlap cyclically with no trailing gap
	Easing  Easing
}

// Clone returns a deep copy of a.
func (a Animation) Clone() Animation {
	a.Pattern = a.Pattern.Clone()
	return a
}

// Visible returns how long one frame is visible: hold plus fade.
func (a Animation) Visible() time.Duration {
	return a.Hold + a.Fade
}

// Config is a fully resolved animation and color. Treat it as immutable;
// edits take effect by building a new Config and a new instance.
type Config struct {
	Animation
	Swatch
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Animation = c.Animation.Clone()
	return c
}

// AnimationRef is either the name of an animation preset or an inline
// Animation. The zero value references nothing and fails to resolve.
type AnimationRef struct {
	name   string
	inline *Animation
}

// AnimationNamed references the animation preset called name.
func AnimationNamed(name string) AnimationRef {
	return AnimationRef{name: name}
}

// InlineAnimation wraps a concrete animation.
func InlineAnimation(a Animation) AnimationRef {
	a = a.Clone()
	return AnimationRef{inline: &a}
}

// Name returns the referenced preset name, or false for inline values.
func (r AnimationRef) Name() (string, bool) {
	return r.name, r.inline == nil && r.name != ""
}

// SwatchRef is either the name of a color preset or an inline Swatch.
type SwatchRef struct {
	name   string
	inline *Swatch
}

// SwatchNamed references the color preset called name.
func SwatchNamed(name string) SwatchRef {
	return SwatchRef{name: name}
}

// InlineSwatch wraps a concrete swatch.
func InlineSwatch(s Swatch) SwatchRef {
	return SwatchRef{inline: &s}
}

// Name returns the referenced preset name, or false for inline values.
func (r SwatchRef) Name() (string, bool) {
	return r.name, r.inline == nil && r.name != ""
}

type inputKind uint8

const (
	inputNone inputKind = iota
	inputResolved
	inputRefs
)

// Input is what the engine accepts: an already resolved Config, or a pair of
// references resolved against a preset table.
type Input struct {
	kind      inputKind
	config    Config
	animation AnimationRef
	swatch    SwatchRef
}

// Resolved wraps a concrete Config.
func Resolved(c Config) Input {
	return Input{kind: inputResolved, config: c.Clone()}
}

// Refs pairs an animation reference with a color reference.
func Refs(a AnimationRef, s SwatchRef) Input {
	return Input{kind: inputRefs, animation: a, swatch: s}
}

// Named is shorthand for Refs(AnimationNamed(animation), SwatchNamed(swatch)).
func Named(animation, swatch string) Input {
	return Refs(AnimationNamed(animation), SwatchNamed(swatch))
}

// ErrEmptyInput is returned when an Input or one of its references is the
// zero value.
var ErrEmptyInput = errors.New("bloom: empty config input")

// Resolve merges in into one Config using the preset tables in p. No range
// checks are applied; the frame computation skips indices outside the grid.
func (p *Presets) Resolve(in Input) (Config, error) {
	switch in.kind {
	case inputResolved:
		return in.config.Clone(), nil
	case inputRefs:
	default:
		return Config{}, ErrEmptyInput
	}

	var cfg Config
	switch {
	case in.animation.inline != nil:
		cfg.Animation = in.animation.inline.Clone()
	case in.animation.name != "":
		a, err := p.Animation(in.animation.name)
		if err != nil {
			return Config{}, err
		}
		cfg.Animation = a
	default:
		return Config{}, errors.Wrap(ErrEmptyInput, "animation reference")
	}

	switch {
	case in.swatch.inline != nil:
		cfg.Swatch = *in.swatch.inline
	case in.swatch.name != "":
		s, err := p.Swatch(in.swatch.name)
		if err != nil {
			return Config{}, err
		}
		cfg.Swatch = s
	default:
		return Config{}, errors.Wrap(ErrEmptyInput, "color reference")
	}
	return cfg, nil
}

// Resolve resolves in against DefaultPresets.
func Resolve(in Input) (Config, error) {
	return DefaultPresets().Resolve(in)
}
