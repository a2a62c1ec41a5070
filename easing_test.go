package bloom

import (
	"errors"
	"math"
	"testing"
)

const easeEpsilon = 1e-6

// --- Ease boundaries ---

func TestEaseBoundaries(t *testing.T) {
	for _, kind := range Easings {
		t.Run(string(kind), func(t *testing.T) {
			if got := Ease(0, kind); got != 0 {
				t.Errorf("Ease(0, %s) = %v, want 0", kind, got)
			}
			if got := Ease(1, kind); got != 1 {
				t.Errorf("Ease(1, %s) = %v, want 1", kind, got)
			}
		})
	}
}

func TestEaseMonotonic(t *testing.T) {
	const steps = 200
	for _, kind := range Easings {
		t.Run(string(kind), func(t *testing.T) {
			prev := Ease(0, kind)
			for i := 1; i <= steps; i++ {
				x := float64(i) / steps
				got := Ease(x, kind)
				if got < prev {
					t.Fatalf("Ease(%v, %s) = %v < Ease at previous step %v", x, kind, got, prev)
				}
				if got < 0 || got > 1 {
					t.Fatalf("Ease(%v, %s) = %v, outside [0, 1]", x, kind, got)
				}
				prev = got
			}
		})
	}
}

func TestEaseCurves(t *testing.T) {
	tests := []struct {
		kind Easing
		in   float64
		want float64
	}{
		{EaseLinear, 0.25, 0.25},
		{EaseLinear, 0.5, 0.5},
		{EaseIn, 0.5, 0.25},
		{EaseIn, 0.25, 0.0625},
		{EaseOut, 0.5, 0.75},
		{EaseOut, 0.25, 0.4375},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.75, 0.875},
	}
	for _, tt := range tests {
		got := Ease(tt.in, tt.kind)
		if math.Abs(got-tt.want) > easeEpsilon {
			t.Errorf("Ease(%v, %s) = %v, want %v", tt.in, tt.kind, got, tt.want)
		}
	}
}

func TestEaseClampsInput(t *testing.T) {
	for _, kind := range Easings {
		if got := Ease(-0.5, kind); got != 0 {
			t.Errorf("Ease(-0.5, %s) = %v, want 0", kind, got)
		}
		if got := Ease(1.5, kind); got != 1 {
			t.Errorf("Ease(1.5, %s) = %v, want 1", kind, got)
		}
	}
}

func TestEaseUnknownIsLinear(t *testing.T) {
	if got := Ease(0.3, Easing("bounce")); math.Abs(got-0.3) > easeEpsilon {
		t.Errorf("Ease(0.3, bounce) = %v, want 0.3", got)
	}
}

// --- ParseEasing ---

func TestParseEasing(t *testing.T) {
	for _, kind := range Easings {
		got, err := ParseEasing(string(kind))
		if err != nil || got != kind {
			t.Errorf("ParseEasing(%q) = %v, %v; want %v, nil", kind, got, err, kind)
		}
	}
	if _, err := ParseEasing("ease"); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("ParseEasing(\"ease\") error = %v, want ErrUnknownEasing", err)
	}
}

func TestEasingNextCycles(t *testing.T) {
	e := EaseLinear
	seen := map[Easing]bool{}
	for range Easings {
		seen[e] = true
		e = e.Next()
	}
	if e != EaseLinear {
		t.Errorf("after %d steps Next() = %v, want %v", len(Easings), e, EaseLinear)
	}
	if len(seen) != len(Easings) {
		t.Errorf("Next visited %d curves, want %d", len(seen), len(Easings))
	}
}
