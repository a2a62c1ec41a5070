package gallery

import (
	"github.com/phanxgames/bloom"
)

// Layout sizes the tiles of a scene gallery.
type Layout struct {
	Columns  int
	Grid     bloom.GridStyle
	Padding  float64 // inside each tile, around the grid
	LabelGap float64 // between grid and label
	Spacing  float64 // between tiles
}

// DefaultLayout fits twelve tiles on a 960x540 window.
var DefaultLayout = Layout{
	Columns:  4,
	Grid:     bloom.DefaultGridStyle,
	Padding:  24,
	LabelGap: 12,
	Spacing:  16,
}

// labelHeight is the debug font's line height.
const labelHeight = 16

// TileSize returns the width and height of one tile.
func (l Layout) TileSize() (w, h float64) {
	extent := l.Grid.Extent()
	w = extent + 2*l.Padding
	// room for the longest title, at 7px per debug-font glyph
	w = max(w, 11*7+2*l.Padding)
	h = extent + 2*l.Padding + l.LabelGap + labelHeight
	return w, h
}

// Size returns the extent of the whole gallery for n tiles.
func (l Layout) Size(n int) (w, h float64) {
	perRow := max(l.Columns, 1)
	cols := min(n, perRow)
	rows := (n + perRow - 1) / perRow
	tw, th := l.TileSize()
	w = float64(cols)*tw + float64(max(cols-1, 0))*l.Spacing
	h = float64(rows)*th + float64(max(rows-1, 0))*l.Spacing
	return w, h
}

var (
	plateColor  = bloom.Color{R: 0.09, G: 0.09, B: 0.11, A: 1}
	stoppedDim  = 0.45
	pulseLength = float32(0.35)
)

// tileNodes are the scene nodes of one tile.
type tileNodes struct {
	root  *bloom.Node
	plate *bloom.Node
	label *bloom.Node
	dim   *bloom.ColorMatrixFilter
}

// SceneGallery is a Gallery laid out on a bloom scene.
type SceneGallery struct {
	*Gallery
	scene  *bloom.Scene
	layout Layout
	root   *bloom.Node
	nodes  []*tileNodes
}

// NewSceneGallery builds a tile per entry under parent and starts them.
func NewSceneGallery(scene *bloom.Scene, parent *bloom.Node, engine *bloom.Engine, entries []Entry, layout Layout, opts Options) (*SceneGallery, error) {
	if layout.Columns < 1 {
		layout.Columns = 1
	}
	sg := &SceneGallery{
		scene:  scene,
		layout: layout,
		root:   bloom.NewContainer("gallery"),
	}
	parent.AddChild(sg.root)

	g, err := New(engine, entries, sg.mountTile, opts)
	if err != nil {
		sg.root.Dispose()
		return nil, err
	}
	sg.Gallery = g
	return sg, nil
}

// Root returns the container holding every tile.
func (sg *SceneGallery) Root() *bloom.Node {
	return sg.root
}

func (sg *SceneGallery) mountTile(i int, e Entry) bloom.Host {
	l := sg.layout
	tw, th := l.TileSize()
	extent := l.Grid.Extent()

	tile := bloom.NewContainer("tile-" + e.Animation)
	tile.SetPosition(float64(i%l.Columns)*(tw+l.Spacing), float64(i/l.Columns)*(th+l.Spacing))

	dim := bloom.NewColorMatrixFilter()
	plate := bloom.NewSprite("plate", tw, th, plateColor)
	plate.Filters = []bloom.Filter{dim}
	plate.HitShape = bloom.Rect{Width: 1, Height: 1}
	plate.OnClick = func(bloom.ClickContext) { sg.Toggle(i) }
	tile.AddChild(plate)

	anchor := bloom.NewContainer("grid")
	anchor.SetPosition((tw-extent)/2, l.Padding)
	tile.AddChild(anchor)

	label := bloom.NewLabel("label", e.Title)
	label.SetPosition(l.Padding/2, l.Padding+extent+l.LabelGap)
	tile.AddChild(label)

	sg.root.AddChild(tile)
	sg.nodes = append(sg.nodes, &tileNodes{root: tile, plate: plate, label: label, dim: dim})
	return anchor.GridHost(l.Grid)
}

// Toggle flips tile i, dims its plate while stopped and pulses its label.
func (sg *SceneGallery) Toggle(i int) bool {
	running := sg.Gallery.Toggle(i)
	if i < 0 || i >= len(sg.nodes) {
		return running
	}
	n := sg.nodes[i]
	if running {
		n.dim.SetBrightness(1)
		sg.scene.AddTween(bloom.Pulse(n.label, 0.2, 1, pulseLength))
	} else {
		n.dim.SetBrightness(stoppedDim)
		sg.scene.AddTween(bloom.Pulse(n.label, 1, 0.5, pulseLength))
	}
	return running
}

// Close destroys every tile and removes the gallery from the scene.
func (sg *SceneGallery) Close() {
	sg.Gallery.Close()
	sg.root.Dispose()
}
