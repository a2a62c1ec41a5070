package bloom

import "time"

// Brightness envelope. A frame flashes in over-bright and settles to 1.0 by
// the end of its hold, then dims to 0.5 as it fades.
const (
	holdBrightnessStart = 2.5
	holdBrightnessEnd   = 1.0
	fadeBrightnessEnd   = 0.5
)

// CellState is the visual state of one cell for one rendered frame.
type CellState struct {
	Opacity float64
	Paint   Paint
	// Brightness is the filter multiplier; zero means no filter.
	Brightness float64
}

// Lit reports whether the cell is visible.
func (s CellState) Lit() bool {
	return s.Opacity > 0
}

// Filtered reports whether a brightness filter applies.
func (s CellState) Filtered() bool {
	return s.Brightness > 0
}

// Composite returns the cell as seen over a black background: paint scaled
// by brightness, clipped, then scaled by opacity.
func (s CellState) Composite() Color {
	if !s.Lit() {
		return ColorBlack
	}
	c := s.Paint.Color()
	if s.Filtered() {
		c = c.Scale(s.Brightness)
	}
	c = c.Clamped().Scale(clamp01(s.Opacity))
	c.A = 1
	return c
}

// GridState holds one CellState per grid cell.
type GridState [CellCount]CellState

// CycleLength returns the period of a. In wrap mode frames overlap with no
// gap; otherwise one full hold+fade is appended so the last frame finishes
// before the first repeats.
func CycleLength(a Animation) time.Duration {
	cycle := time.Duration(len(a.Pattern)) * a.Stagger
	if !a.Wrap {
		cycle += a.Visible()
	}
	return cycle
}

// CyclePosition maps time since the instance's start onto [0, CycleLength).
// It returns false when the cycle length is not positive, in which case
// nothing is drawn.
func CyclePosition(a Animation, sinceStart time.Duration) (time.Duration, bool) {
	cycle := CycleLength(a)
	if cycle <= 0 {
		return 0, false
	}
	pos := (sinceStart + a.Offset) % cycle
	if pos < 0 {
		pos += cycle
	}
	return pos, true
}

// Compute returns the grid state sinceStart after the instance's logical
// start. It is pure: the same inputs always yield the same state.
func (ip Interpolator) Compute(cfg Config, sinceStart time.Duration) GridState {
	var grid GridState
	pos, ok := CyclePosition(cfg.Animation, sinceStart)
	if !ok {
		return grid
	}

	cycle := CycleLength(cfg.Animation)
	hold := cfg.Hold
	visible := cfg.Visible()
	lit := ip.At(0, cfg.Swatch)

	for i, frame := range cfg.Pattern {
		elapsed := pos - time.Duration(i)*cfg.Stagger
		if elapsed < 0 {
			elapsed += cycle
		}
		if elapsed < 0 {
			continue
		}

		var state CellState
		switch {
		case elapsed < hold:
			state = CellState{
				Opacity:    1,
				Paint:      lit,
				Brightness: HoldBrightness(elapsed, hold),
			}
		case elapsed < visible:
			t := Ease(float64(elapsed-hold)/float64(cfg.Fade), cfg.Easing)
			state = CellState{
				Opacity:    1,
				Paint:      ip.At(t, cfg.Swatch),
				Brightness: holdBrightnessEnd - (holdBrightnessEnd-fadeBrightnessEnd)*t,
			}
		default:
			continue
		}

		for _, cell := range frame {
			if cell < 0 || cell >= CellCount {
				continue
			}
			grid[cell] = state
		}
	}
	return grid
}

// HoldBrightness returns the filter multiplier at elapsed into a hold phase
// of length hold.
func HoldBrightness(elapsed, hold time.Duration) float64 {
	if hold <= 0 {
		return holdBrightnessEnd
	}
	h := clamp01(float64(elapsed) / float64(hold))
	return holdBrightnessStart - (holdBrightnessStart-holdBrightnessEnd)*h
}
