package bloom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandSprite CommandType = iota // scaled white pixel
	CommandLabel                     // debug-font text
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type      CommandType
	Transform [6]float64
	// Color is the filtered tint with world alpha applied. RGB may exceed 1
	// when a brightness filter over-drives it.
	Color Color
	Text  string
}

// whitePixel is a 1x1 white image used for every solid-color sprite. Created
// lazily so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// traverse walks the node tree depth-first, updating transforms and emitting
// render commands for visible sprites and labels.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}
	n.worldAlpha = parentAlpha * n.Alpha

	if n.worldAlpha > 0 {
		switch n.Type {
		case NodeTypeSprite:
			c := filteredColor(n.Color, n.Filters)
			c.A *= n.worldAlpha
			s.commands = append(s.commands, RenderCommand{
				Type:      CommandSprite,
				Transform: n.worldTransform,
				Color:     c,
			})
		case NodeTypeLabel:
			s.commands = append(s.commands, RenderCommand{
				Type:      CommandLabel,
				Transform: n.worldTransform,
				Color:     Color{1, 1, 1, n.worldAlpha},
				Text:      n.Text,
			})
		}
	}

	for _, child := range n.children {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// submit draws the collected commands onto target in tree order.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandSprite:
			op.GeoM.Reset()
			m := cmd.Transform
			op.GeoM.SetElement(0, 0, m[0])
			op.GeoM.SetElement(1, 0, m[1])
			op.GeoM.SetElement(0, 1, m[2])
			op.GeoM.SetElement(1, 1, m[3])
			op.GeoM.SetElement(0, 2, m[4])
			op.GeoM.SetElement(1, 2, m[5])
			// Ebitengine color scales are premultiplied.
			a := clamp01(cmd.Color.A)
			op.ColorScale.Reset()
			op.ColorScale.Scale(
				float32(cmd.Color.R*a),
				float32(cmd.Color.G*a),
				float32(cmd.Color.B*a),
				float32(a),
			)
			target.DrawImage(ensureWhitePixel(), &op)
		case CommandLabel:
			if cmd.Color.A <= 0 {
				continue
			}
			ebitenutil.DebugPrintAt(target, cmd.Text, int(cmd.Transform[4]), int(cmd.Transform[5]))
		}
	}
}
