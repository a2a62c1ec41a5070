package bloom

import "testing"

func TestAttachGridLayout(t *testing.T) {
	root := NewContainer("root")
	g := root.GridHost(GridStyle{CellSize: 10, Gap: 2}).AttachGrid().(*nodeGrid)

	if root.NumChildren() != 1 || root.ChildAt(0) != g.container {
		t.Fatal("grid container not mounted on host")
	}
	if g.container.NumChildren() != CellCount {
		t.Fatalf("cells = %d, want %d", g.container.NumChildren(), CellCount)
	}
	for i, cell := range g.cells {
		wantX := float64(i%3) * 12
		wantY := float64(i/3) * 12
		if cell.X != wantX || cell.Y != wantY {
			t.Errorf("cell %d at (%v, %v), want (%v, %v)", i, cell.X, cell.Y, wantX, wantY)
		}
		if cell.Alpha != 0 {
			t.Errorf("cell %d Alpha = %v, want 0", i, cell.Alpha)
		}
	}
	if got := (GridStyle{CellSize: 10, Gap: 2}).Extent(); got != 34 {
		t.Errorf("Extent = %v, want 34", got)
	}
}

func TestNodeGridSetCell(t *testing.T) {
	g := NewContainer("root").AttachGrid().(*nodeGrid)
	state := CellState{
		Opacity:    1,
		Paint:      Paint{Gamut: GamutStandard, SRGB: [3]uint8{255, 0, 0}},
		Brightness: 2.5,
	}

	g.SetCell(4, state)
	cell := g.cells[4]
	if cell.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", cell.Alpha)
	}
	if cell.Color != (Color{1, 0, 0, 1}) {
		t.Errorf("Color = %v, want red", cell.Color)
	}
	if len(cell.Filters) != 1 {
		t.Fatalf("Filters = %d, want 1", len(cell.Filters))
	}
	if r, _, _, _ := cell.Filters[0].ColorScale(); r != 2.5 {
		t.Errorf("brightness = %v, want 2.5", r)
	}

	g.SetCell(4, CellState{})
	if cell.Alpha != 0 || cell.Filters != nil {
		t.Errorf("blank cell Alpha=%v Filters=%v, want 0 and nil", cell.Alpha, cell.Filters)
	}
}

func TestNodeGridIgnoresBadIndex(t *testing.T) {
	g := NewContainer("root").AttachGrid().(*nodeGrid)
	g.SetCell(-1, CellState{Opacity: 1})
	g.SetCell(CellCount, CellState{Opacity: 1})
	for i, cell := range g.cells {
		if cell.Alpha != 0 {
			t.Errorf("cell %d written by out-of-range index", i)
		}
	}
}

func TestNodeGridDetach(t *testing.T) {
	root := NewContainer("root")
	g := root.AttachGrid()
	g.Detach()
	if root.NumChildren() != 0 {
		t.Error("grid still mounted after Detach")
	}
	// Writes after detaching are ignored.
	g.SetCell(0, CellState{Opacity: 1})
}
