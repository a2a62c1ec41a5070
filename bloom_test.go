package bloom

import "testing"

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestColorScaleKeepsAlpha(t *testing.T) {
	got := Color{0.5, 0.25, 1, 0.4}.Scale(2)
	if got != (Color{1, 0.5, 2, 0.4}) {
		t.Errorf("Scale(2) = %v", got)
	}
}

func TestColorRGB255(t *testing.T) {
	r, g, b := Color{1.4, 0.5, -0.2, 1}.RGB255()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB255 = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}
}
