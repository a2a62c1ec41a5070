package bloom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState tracks the mouse between press and release.
type pointerState struct {
	down    bool
	button  MouseButton
	hitNode *Node
	startX  float64
	startY  float64
}

// hitTest returns the topmost clickable node under the world point, or nil.
// Later siblings are drawn on top, so children are searched in reverse.
func (s *Scene) hitTest(wx, wy float64) *Node {
	return hitTestNode(s.root, wx, wy)
}

func hitTestNode(n *Node, wx, wy float64) *Node {
	if !n.Visible || n.disposed {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTestNode(n.children[i], wx, wy); hit != nil {
			return hit
		}
	}
	if n.HitShape == nil || n.OnClick == nil {
		return nil
	}
	lx, ly := n.WorldToLocal(wx, wy)
	if n.HitShape.Contains(lx, ly) {
		return n
	}
	return nil
}

// processInput reads the mouse from ebiten and dispatches clicks.
func (s *Scene) processInput() {
	mx, my := ebiten.CursorPosition()
	for _, b := range [...]struct {
		eb ebiten.MouseButton
		mb MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.PointerDown(float64(mx), float64(my), b.mb)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.PointerUp(float64(mx), float64(my), b.mb)
		}
	}
}

// PointerDown records a press at world coordinates (x, y).
func (s *Scene) PointerDown(x, y float64, button MouseButton) {
	updateWorldTransform(s.root, identityTransform, 1, false)
	s.pointer = pointerState{
		down:    true,
		button:  button,
		hitNode: s.hitTest(x, y),
		startX:  x,
		startY:  y,
	}
}

// PointerUp completes a press. A click fires when the release lands on the
// node that was pressed.
func (s *Scene) PointerUp(x, y float64, button MouseButton) {
	if !s.pointer.down || s.pointer.button != button {
		return
	}
	pressed := s.pointer.hitNode
	s.pointer = pointerState{}
	if pressed == nil || pressed.disposed {
		return
	}
	updateWorldTransform(s.root, identityTransform, 1, false)
	if s.hitTest(x, y) != pressed || pressed.OnClick == nil {
		return
	}
	lx, ly := pressed.WorldToLocal(x, y)
	pressed.OnClick(ClickContext{
		Node:    pressed,
		GlobalX: x,
		GlobalY: y,
		LocalX:  lx,
		LocalY:  ly,
		Button:  button,
	})
}
