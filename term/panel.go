// Package term hosts bloom grids in a terminal through tcell. A Panel is a
// rectangular area of character cells; each grid cell is drawn as a block of
// background-colored spaces.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/bloom"
)

// Canvas is the part of tcell.Screen a Panel draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// ColorMode selects how cell colors reach the terminal.
type ColorMode uint8

const (
	ColorPalette   ColorMode = iota // nearest of the 256 xterm colors
	ColorTrueColor                  // 24-bit RGB
)

// ColorModeFor picks a mode from the number of colors a screen reports.
func ColorModeFor(colors int) ColorMode {
	if colors >= 1<<24 {
		return ColorTrueColor
	}
	return ColorPalette
}

// DetectGamut maps a screen's color depth onto a bloom gamut. Only 24-bit
// terminals get the wide swatches; they are still clipped to sRGB on output.
func DetectGamut(s tcell.Screen) bloom.Gamut {
	if ColorModeFor(s.Colors()) == ColorTrueColor {
		return bloom.GamutWide
	}
	return bloom.GamutStandard
}

// PanelStyle sizes the blocks of a terminal grid, in character cells.
type PanelStyle struct {
	CellWidth  int
	CellHeight int
	GapX       int
	GapY       int
}

// DefaultPanelStyle draws each grid cell two columns wide so blocks look
// roughly square.
var DefaultPanelStyle = PanelStyle{CellWidth: 2, CellHeight: 1, GapX: 1, GapY: 0}

// Size returns the width and height of a grid in character cells.
func (st PanelStyle) Size() (w, h int) {
	w = bloom.GridSide*st.CellWidth + (bloom.GridSide-1)*st.GapX
	h = bloom.GridSide*st.CellHeight + (bloom.GridSide-1)*st.GapY
	return w, h
}

// Panel implements bloom.Host for a rectangle of a terminal canvas whose top
// left corner is at (X, Y).
type Panel struct {
	canvas Canvas
	X, Y   int
	style  PanelStyle
	mode   ColorMode
}

// NewPanel creates a panel at (x, y).
func NewPanel(c Canvas, x, y int, style PanelStyle, mode ColorMode) *Panel {
	return &Panel{canvas: c, X: x, Y: y, style: style, mode: mode}
}

// AttachGrid implements bloom.Host.
func (p *Panel) AttachGrid() bloom.Grid {
	g := &panelGrid{panel: p}
	for i := 0; i < bloom.CellCount; i++ {
		g.fill(i, tcell.StyleDefault)
	}
	return g
}

// Style converts a cell state to the tcell style its block is drawn with.
func (p *Panel) Style(state bloom.CellState) tcell.Style {
	if !state.Lit() {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(p.color(state.Composite()))
}

func (p *Panel) color(c bloom.Color) tcell.Color {
	r, g, b := c.RGB255()
	if p.mode == ColorTrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return nearestPaletteColor(r, g, b)
}

// panelGrid writes cells straight to the canvas. Detach restores the default
// background.
type panelGrid struct {
	panel    *Panel
	detached bool
}

func (g *panelGrid) SetCell(index int, state bloom.CellState) {
	if index < 0 || index >= bloom.CellCount || g.detached {
		return
	}
	g.fill(index, g.panel.Style(state))
}

func (g *panelGrid) Detach() {
	if g.detached {
		return
	}
	for i := 0; i < bloom.CellCount; i++ {
		g.fill(i, tcell.StyleDefault)
	}
	g.detached = true
}

func (g *panelGrid) fill(index int, style tcell.Style) {
	p := g.panel
	st := p.style
	x0 := p.X + (index%bloom.GridSide)*(st.CellWidth+st.GapX)
	y0 := p.Y + (index/bloom.GridSide)*(st.CellHeight+st.GapY)
	for y := y0; y < y0+st.CellHeight; y++ {
		for x := x0; x < x0+st.CellWidth; x++ {
			p.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// --- 256-color fallback ---

// paletteColors are the xterm colors 16-255 in Lab-comparable form. The
// first 16 are skipped because terminals theme them.
var paletteColors = func() []colorful.Color {
	out := make([]colorful.Color, 0, 240)
	for i := 16; i < 256; i++ {
		r, g, b := tcell.PaletteColor(i).RGB()
		out = append(out, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
	}
	return out
}()

var nearestCache = make(map[[3]uint8]tcell.Color)

// nearestPaletteColor returns the palette color closest to (r, g, b) in Lab
// space. Results are cached; the frame loop only runs on one goroutine.
func nearestPaletteColor(r, g, b uint8) tcell.Color {
	key := [3]uint8{r, g, b}
	if c, ok := nearestCache[key]; ok {
		return c
	}
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, -1.0
	for i, pc := range paletteColors {
		if d := want.DistanceLab(pc); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	c := tcell.PaletteColor(best + 16)
	nearestCache[key] = c
	return c
}
