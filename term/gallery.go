package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
	"github.com/phanxgames/bloom/gallery"
)

// TileKeys toggle tiles in order: the first key toggles tile 0.
const TileKeys = "1234567890-="

// Layout places gallery tiles on the terminal.
type Layout struct {
	Columns    int
	Panel      PanelStyle
	LabelWidth int // reserved for "k Title"
	Spacing    int // columns between tiles; rows get half as much, at least 1
}

// DefaultLayout fits twelve tiles in an 80x24 terminal.
var DefaultLayout = Layout{Columns: 4, Panel: DefaultPanelStyle, LabelWidth: 14, Spacing: 4}

// TileSize returns the width and height of one tile in character cells.
func (l Layout) TileSize() (w, h int) {
	gw, gh := l.Panel.Size()
	return max(gw, l.LabelWidth), gh + 2
}

func (l Layout) origin(i int) (x, y int) {
	tw, th := l.TileSize()
	col, row := i%l.Columns, i/l.Columns
	return col * (tw + l.Spacing), row * (th + max(l.Spacing/2, 1))
}

var (
	labelRunning = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	labelStopped = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// GalleryView is a gallery drawn on a terminal canvas.
type GalleryView struct {
	*gallery.Gallery
	canvas Canvas
	layout Layout
	labels [][2]int
}

// NewGalleryView mounts one panel per entry and starts them.
func NewGalleryView(c Canvas, engine *bloom.Engine, entries []gallery.Entry, layout Layout, mode ColorMode, opts gallery.Options) (*GalleryView, error) {
	if layout.Columns < 1 {
		layout.Columns = 1
	}
	v := &GalleryView{canvas: c, layout: layout}
	gw, gh := layout.Panel.Size()
	tw, _ := layout.TileSize()
	g, err := gallery.New(engine, entries, func(i int, e gallery.Entry) bloom.Host {
		x, y := layout.origin(i)
		v.labels = append(v.labels, [2]int{x, y + gh + 1})
		return NewPanel(c, x+(tw-gw)/2, y, layout.Panel, mode)
	}, opts)
	if err != nil {
		return nil, err
	}
	v.Gallery = g
	for i := 0; i < g.Len(); i++ {
		v.drawLabel(i)
	}
	return v, nil
}

// Label returns the text drawn under tile i.
func (v *GalleryView) Label(i int) string {
	title := v.Tile(i).Entry.Title
	if i < len(TileKeys) {
		return string(TileKeys[i]) + " " + title
	}
	return "  " + title
}

// HandleKey toggles the tile bound to ev's key and reports whether the key
// was bound.
func (v *GalleryView) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	i := strings.IndexRune(TileKeys, ev.Rune())
	if i < 0 || i >= v.Len() {
		return false
	}
	v.Toggle(i)
	return true
}

// Toggle flips tile i and redraws its label.
func (v *GalleryView) Toggle(i int) bool {
	running := v.Gallery.Toggle(i)
	if i >= 0 && i < v.Len() {
		v.drawLabel(i)
	}
	return running
}

// Redraw repaints every label, for example after a resize cleared the screen.
func (v *GalleryView) Redraw() {
	for i := 0; i < v.Len(); i++ {
		v.drawLabel(i)
	}
}

func (v *GalleryView) drawLabel(i int) {
	style := labelStopped
	if v.Tile(i).Instance.Active() {
		style = labelRunning
	}
	pos := v.labels[i]
	tw, _ := v.layout.TileSize()
	text := []rune(v.Label(i))
	for x := 0; x < tw; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		v.canvas.SetContent(pos[0]+x, pos[1], r, nil, style)
	}
}
