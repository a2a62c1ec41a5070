package bloom

import (
	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
)

// Easing names one of the fade curves a pattern frame can use.
type Easing string

const (
	EaseLinear    Easing = "linear"      // t
	EaseIn        Easing = "ease-in"     // t²
	EaseOut       Easing = "ease-out"    // 1-(1-t)²
	EaseInOut     Easing = "ease-in-out" // 2t² below 0.5, 1-2(1-t)² above
	easingUnknown Easing = ""
)

// Easings lists every supported curve in presentation order.
var Easings = []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut}

// ErrUnknownEasing is returned by ParseEasing for names outside Easings.
var ErrUnknownEasing = errors.New("bloom: unknown easing")

// ParseEasing maps a curve name to its Easing.
func ParseEasing(name string) (Easing, error) {
	for _, e := range Easings {
		if string(e) == name {
			return e, nil
		}
	}
	return easingUnknown, errors.Wrapf(ErrUnknownEasing, "%q", name)
}

// Next returns the curve after e in Easings, wrapping around.
func (e Easing) Next() Easing {
	for i, c := range Easings {
		if c == e {
			return Easings[(i+1)%len(Easings)]
		}
	}
	return Easings[0]
}

// TweenFunc returns the gween curve implementing e. Unrecognized names map
// to the linear curve.
func (e Easing) TweenFunc() ease.TweenFunc {
	switch e {
	case EaseIn:
		return ease.InQuad
	case EaseOut:
		return ease.OutQuad
	case EaseInOut:
		return ease.InOutQuad
	default:
		return ease.Linear
	}
}

// Ease maps normalized progress t through the named curve. t is clamped to
// [0, 1]; the result is in [0, 1] with Ease(0)=0 and Ease(1)=1.
func Ease(t float64, kind Easing) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return clamp01(float64(kind.TweenFunc()(float32(t), 0, 1, 1)))
}
