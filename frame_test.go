package bloom

import (
	"math"
	"testing"
	"time"
)

func testConfig(t *testing.T, anim, swatch string) Config {
	t.Helper()
	cfg, err := Resolve(Named(anim, swatch))
	if err != nil {
		t.Fatalf("Resolve(%s, %s): %v", anim, swatch, err)
	}
	return cfg
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// --- Cycle length ---

func TestCycleLength(t *testing.T) {
	base := Animation{
		Pattern: Pattern{{0}, {1}, {2}},
		Stagger: ms(100),
		Hold:    ms(50),
		Fade:    ms(50),
	}
	tests := []struct {
		name string
		wrap bool
		want time.Duration
	}{
		{"wrap", true, ms(300)},
		{"no wrap", false, ms(400)},
	}
	for _, tt := range tests {
		a := base
		a.Wrap = tt.wrap
		if got := CycleLength(a); got != tt.want {
			t.Errorf("%s: CycleLength = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCycleLengthPresets(t *testing.T) {
	tests := []struct {
		name string
		want time.Duration
	}{
		{"loading", ms(1440)},
		{"downloading", ms(3*380 + 380 + 380)},
		{"processing", ms(170 + 360 + 420)},
	}
	p := DefaultPresets()
	for _, tt := range tests {
		a, err := p.Animation(tt.name)
		if err != nil {
			t.Fatalf("Animation(%s): %v", tt.name, err)
		}
		if got := CycleLength(a); got != tt.want {
			t.Errorf("%s: CycleLength = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCyclePositionNegative(t *testing.T) {
	a := Animation{Pattern: Pattern{{0}}, Stagger: ms(100), Wrap: true, Offset: -ms(30)}
	pos, ok := CyclePosition(a, 0)
	if !ok || pos != ms(70) {
		t.Errorf("CyclePosition = %v, %v; want 70ms, true", pos, ok)
	}
}

// --- Hold phase ---

func TestHoldBrightness(t *testing.T) {
	hold := ms(400)
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 2.5},
		{ms(200), 1.75},
		{hold, 1.0},
	}
	for _, tt := range tests {
		if got := HoldBrightness(tt.elapsed, hold); !approx(got, tt.want) {
			t.Errorf("HoldBrightness(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if got := HoldBrightness(0, 0); got != 1.0 {
		t.Errorf("HoldBrightness with zero hold = %v, want 1", got)
	}
}

func TestComputeHoldStart(t *testing.T) {
	cfg := testConfig(t, "loading", "cyan")
	st := NewInterpolator(GamutStandard).Compute(cfg, 0)

	// Position 0 is the start of frame 0, which lights cell 1.
	c := st[1]
	if c.Opacity != 1 {
		t.Errorf("cell 1 Opacity = %v, want 1", c.Opacity)
	}
	if c.Brightness != 2.5 {
		t.Errorf("cell 1 Brightness = %v, want 2.5", c.Brightness)
	}
	if c.Paint.SRGB != cfg.SRGB {
		t.Errorf("cell 1 Paint = %v, want %v", c.Paint.SRGB, cfg.SRGB)
	}
}

// --- Wraparound ---

func TestComputeWraparound(t *testing.T) {
	cfg := testConfig(t, "loading", "cyan")
	ip := NewInterpolator(GamutStandard)

	first := ip.Compute(cfg, 0)
	for _, k := range []time.Duration{1, 2, 5} {
		if got := ip.Compute(cfg, k*ms(1440)); got != first {
			t.Errorf("Compute(%d cycles) differs from Compute(0)", k)
		}
	}

	// Frames 7, 6 and 5 are still visible at position 0 because they wrap
	// around from the previous cycle.
	lit := map[int]bool{1: true, 0: true, 3: true, 6: true}
	for i, c := range first {
		if c.Lit() != lit[i] {
			t.Errorf("cell %d Lit = %v, want %v", i, c.Lit(), lit[i])
		}
	}

	// Frame 7 (cell 0) started 180ms ago: still holding.
	wantBrightness := 2.5 - 1.5*(180.0/350.0)
	if !approx(first[0].Brightness, wantBrightness) {
		t.Errorf("cell 0 Brightness = %v, want %v", first[0].Brightness, wantBrightness)
	}
	// Frame 5 (cell 6) is 190ms into its fade.
	fade := 190.0 / 350.0
	if !approx(first[6].Brightness, 1.0-0.5*fade) {
		t.Errorf("cell 6 Brightness = %v, want %v", first[6].Brightness, 1.0-0.5*fade)
	}
}

func TestComputeNegativeTime(t *testing.T) {
	cfg := testConfig(t, "syncing", "mint")
	ip := NewInterpolator(GamutWide)
	cycle := CycleLength(cfg.Animation)
	if got, want := ip.Compute(cfg, -ms(100)), ip.Compute(cfg, cycle-ms(100)); got != want {
		t.Error("Compute(-100ms) differs from Compute(cycle-100ms)")
	}
}

// --- Fade phase ---

func TestComputeFade(t *testing.T) {
	cfg := Config{
		Animation: Animation{
			Pattern: Pattern{{4}},
			Stagger: ms(100),
			Hold:    ms(100),
			Fade:    ms(100),
			Easing:  EaseLinear,
		},
		Swatch: Swatch{SRGB: [3]uint8{200, 100, 0}},
	}
	ip := NewInterpolator(GamutStandard)

	st := ip.Compute(cfg, ms(150))
	c := st[4]
	if c.Opacity != 1 {
		t.Errorf("mid-fade Opacity = %v, want 1", c.Opacity)
	}
	if c.Paint.SRGB != [3]uint8{100, 50, 0} {
		t.Errorf("mid-fade Paint = %v, want [100 50 0]", c.Paint.SRGB)
	}
	if !approx(c.Brightness, 0.75) {
		t.Errorf("mid-fade Brightness = %v, want 0.75", c.Brightness)
	}

	// Past hold+fade the frame is gone until the cycle (300ms) repeats.
	for _, at := range []time.Duration{ms(200), ms(250), ms(299)} {
		if ip.Compute(cfg, at)[4].Lit() {
			t.Errorf("cell lit at %v, want blank", at)
		}
	}
	if !ip.Compute(cfg, ms(300))[4].Lit() {
		t.Error("cell blank at 300ms, want lit")
	}
}

// --- Edge cases ---

func TestComputeSkipsOutOfRange(t *testing.T) {
	cfg := Config{
		Animation: Animation{
			Pattern: Pattern{{-1, 4, 9, 42}},
			Stagger: ms(100),
			Hold:    ms(100),
			Fade:    ms(100),
		},
		Swatch: Swatch{SRGB: [3]uint8{255, 255, 255}},
	}
	st := NewInterpolator(GamutStandard).Compute(cfg, 0)
	for i, c := range st {
		if c.Lit() != (i == 4) {
			t.Errorf("cell %d Lit = %v, want %v", i, c.Lit(), i == 4)
		}
	}
}

func TestComputeLaterFrameWins(t *testing.T) {
	cfg := Config{
		Animation: Animation{
			Pattern: Pattern{{4}, {4}},
			Stagger: ms(100),
			Hold:    ms(100),
			Fade:    ms(100),
		},
		Swatch: Swatch{SRGB: [3]uint8{255, 255, 255}},
	}
	// Frame 0 is fading, frame 1 is half-way through its hold.
	c := NewInterpolator(GamutStandard).Compute(cfg, ms(150))[4]
	if !approx(c.Brightness, 1.75) {
		t.Errorf("Brightness = %v, want 1.75 from the later frame", c.Brightness)
	}
}

func TestComputeZeroCycleIsBlank(t *testing.T) {
	tests := []struct {
		name string
		anim Animation
	}{
		{"empty wrap", Animation{Wrap: true, Stagger: ms(100)}},
		{"zero stagger wrap", Animation{Pattern: Pattern{{0}}, Wrap: true, Hold: ms(100)}},
		{"empty no wrap", Animation{Hold: ms(100), Fade: ms(100)}},
	}
	for _, tt := range tests {
		st := NewInterpolator(GamutStandard).Compute(Config{Animation: tt.anim}, ms(50))
		if st != (GridState{}) {
			t.Errorf("%s: Compute = %+v, want blank", tt.name, st)
		}
	}
}

func TestComputeEmptyFrame(t *testing.T) {
	cfg := Config{
		Animation: Animation{Pattern: Pattern{{}, {2}}, Stagger: ms(100), Hold: ms(100), Wrap: true},
		Swatch:    Swatch{SRGB: [3]uint8{1, 1, 1}},
	}
	st := NewInterpolator(GamutStandard).Compute(cfg, ms(100))
	if !st[2].Lit() {
		t.Error("cell 2 blank, want lit")
	}
}

// --- CellState ---

func TestCellStateComposite(t *testing.T) {
	lit := CellState{
		Opacity:    1,
		Paint:      Paint{Gamut: GamutStandard, SRGB: [3]uint8{51, 102, 255}},
		Brightness: 2,
	}
	c := lit.Composite()
	if !approx(c.R, 0.4) || !approx(c.G, 0.8) || c.B != 1 || c.A != 1 {
		t.Errorf("Composite = %+v, want {0.4 0.8 1 1}", c)
	}
	if got := (CellState{}).Composite(); got != ColorBlack {
		t.Errorf("blank Composite = %+v, want black", got)
	}
}
