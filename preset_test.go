package bloom

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultPresetTables(t *testing.T) {
	p := DefaultPresets()

	wantAnims := []string{
		"loading", "computing", "downloading", "searching", "processing", "compiling",
		"rendering", "syncing", "uploading", "decrypting", "analyzing", "indexing",
	}
	gotAnims := p.AnimationNames()
	if len(gotAnims) != len(wantAnims) {
		t.Fatalf("len(AnimationNames) = %d, want %d", len(gotAnims), len(wantAnims))
	}
	for i := range wantAnims {
		if gotAnims[i] != wantAnims[i] {
			t.Errorf("AnimationNames[%d] = %q, want %q", i, gotAnims[i], wantAnims[i])
		}
	}

	wantSwatches := []string{
		"cyan", "magenta", "green", "blue", "orange", "yellow",
		"purple", "red", "mint", "coral", "lavender", "gold",
	}
	gotSwatches := p.SwatchNames()
	if len(gotSwatches) != len(wantSwatches) {
		t.Fatalf("len(SwatchNames) = %d, want %d", len(gotSwatches), len(wantSwatches))
	}
	for i := range wantSwatches {
		if gotSwatches[i] != wantSwatches[i] {
			t.Errorf("SwatchNames[%d] = %q, want %q", i, gotSwatches[i], wantSwatches[i])
		}
	}
}

func TestDefaultPresetsWellFormed(t *testing.T) {
	p := DefaultPresets()
	for _, name := range p.AnimationNames() {
		a, err := p.Animation(name)
		if err != nil {
			t.Fatalf("Animation(%q): %v", name, err)
		}
		if CycleLength(a) <= 0 {
			t.Errorf("%s: CycleLength = %v, want > 0", name, CycleLength(a))
		}
		if _, err := ParseEasing(string(a.Easing)); err != nil {
			t.Errorf("%s: easing %q invalid", name, a.Easing)
		}
		for _, frame := range a.Pattern {
			for _, cell := range frame {
				if cell < 0 || cell >= CellCount {
					t.Errorf("%s: cell %d outside grid", name, cell)
				}
			}
		}
	}
}

func TestPresetNamesAreCopies(t *testing.T) {
	p := DefaultPresets()
	names := p.AnimationNames()
	names[0] = "changed"
	if p.AnimationNames()[0] != "loading" {
		t.Error("AnimationNames exposed internal slice")
	}
}

func TestNewPresetsRejectsBadNames(t *testing.T) {
	tests := []struct {
		name     string
		anims    []NamedAnimation
		swatches []NamedSwatch
	}{
		{"empty animation name", []NamedAnimation{{Name: ""}}, nil},
		{"duplicate animation", []NamedAnimation{{Name: "a"}, {Name: "a"}}, nil},
		{"empty color name", nil, []NamedSwatch{{Name: ""}}},
		{"duplicate color", nil, []NamedSwatch{{Name: "c"}, {Name: "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPresets(tt.anims, tt.swatches); err == nil {
				t.Error("NewPresets succeeded, want error")
			}
		})
	}
}

func TestCustomPresets(t *testing.T) {
	p, err := NewPresets(
		[]NamedAnimation{{Name: "blink", Animation: Animation{Pattern: Pattern{{4}}, Stagger: ms(100), Hold: ms(100)}}},
		[]NamedSwatch{{Name: "white", Swatch: Swatch{SRGB: [3]uint8{255, 255, 255}}}},
	)
	if err != nil {
		t.Fatalf("NewPresets: %v", err)
	}
	cfg, err := p.Resolve(Named("blink", "white"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Stagger != ms(100) || cfg.SRGB[0] != 255 {
		t.Errorf("Resolve = %+v", cfg)
	}
	if _, err := p.Resolve(Named("loading", "white")); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Resolve(loading) error = %v, want ErrUnknownPreset", err)
	}
}
