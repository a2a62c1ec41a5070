package bloom

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
}

func TestNewSpriteDefaults(t *testing.T) {
	c := Color{0.5, 0.25, 0, 1}
	n := NewSprite("spr", 12, 8, c)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.ScaleX != 12 || n.ScaleY != 8 {
		t.Errorf("Scale = (%v, %v), want (12, 8)", n.ScaleX, n.ScaleY)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func TestNewLabelDefaults(t *testing.T) {
	n := NewLabel("lbl", "Loading")
	assertNodeDefaults(t, n, "lbl", NodeTypeLabel)
	if n.Text != "Loading" {
		t.Errorf("Text = %q, want %q", n.Text, "Loading")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewSprite("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	tests := []struct {
		name string
		fn   func()
	}{
		{"cycle", func() { child.AddChild(parent) }},
		{"self", func() { parent.AddChild(parent) }},
		{"nil", func() { parent.AddChild(nil) }},
		{"wrong parent", func() { NewContainer("other").RemoveChild(child) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %s, got none", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

// --- Removal ---

func TestRemoveChildKeepsOrder(t *testing.T) {
	parent := NewContainer("parent")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if parent.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Error("remaining children should be [a, c]")
	}
	if b.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("Parent should remain nil")
	}
}

// --- Dispose ---

func TestDisposeSubtree(t *testing.T) {
	root := NewContainer("root")
	grid := NewContainer("grid")
	cell := NewSprite("cell", 1, 1, ColorWhite)
	cell.OnClick = func(ClickContext) {}
	root.AddChild(grid)
	grid.AddChild(cell)

	grid.Dispose()

	if root.NumChildren() != 0 {
		t.Error("disposed node still attached to parent")
	}
	if !grid.IsDisposed() || !cell.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if cell.OnClick != nil || cell.Parent != nil {
		t.Error("disposed child still holds references")
	}
	if grid.ID != 0 {
		t.Errorf("disposed ID = %d, want 0", grid.ID)
	}

	grid.Dispose()
}
