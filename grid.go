package bloom

// GridStyle sizes a grid mounted on a Node.
type GridStyle struct {
	CellSize float64 // side of one cell in pixels
	Gap      float64 // space between cells
}

// DefaultGridStyle is used by Node.AttachGrid.
var DefaultGridStyle = GridStyle{CellSize: 12, Gap: 3}

// Extent returns the side length of the whole grid.
func (st GridStyle) Extent() float64 {
	return GridSide*st.CellSize + (GridSide-1)*st.Gap
}

// AttachGrid implements Host with DefaultGridStyle.
func (n *Node) AttachGrid() Grid {
	return n.attachGrid(DefaultGridStyle)
}

// GridHost returns a Host that mounts grids on n with the given style.
func (n *Node) GridHost(style GridStyle) Host {
	return styledHost{node: n, style: style}
}

type styledHost struct {
	node  *Node
	style GridStyle
}

func (h styledHost) AttachGrid() Grid {
	return h.node.attachGrid(h.style)
}

// nodeGrid is a container of nine cell sprites. Each cell owns one
// brightness filter that is attached only while the cell is filtered.
type nodeGrid struct {
	container *Node
	cells     [CellCount]*Node
	filters   [CellCount]BrightnessFilter
	filterBuf [CellCount][1]Filter
}

func (n *Node) attachGrid(style GridStyle) Grid {
	g := &nodeGrid{container: NewContainer("bloom-grid")}
	step := style.CellSize + style.Gap
	for i := range g.cells {
		cell := NewSprite("bloom-cell", style.CellSize, style.CellSize, ColorBlack)
		cell.X = float64(i%GridSide) * step
		cell.Y = float64(i/GridSide) * step
		cell.Alpha = 0
		g.cells[i] = cell
		g.filterBuf[i][0] = &g.filters[i]
		g.container.AddChild(cell)
	}
	n.AddChild(g.container)
	return g
}

// SetCell implements Grid. Indices outside the grid are ignored.
func (g *nodeGrid) SetCell(index int, state CellState) {
	if index < 0 || index >= CellCount || g.container.IsDisposed() {
		return
	}
	cell := g.cells[index]
	cell.Alpha = state.Opacity
	if state.Lit() {
		cell.Color = state.Paint.Color()
	}
	if state.Filtered() {
		g.filters[index].Amount = state.Brightness
		cell.Filters = g.filterBuf[index][:]
	} else {
		cell.Filters = nil
	}
}

// Detach implements Grid.
func (g *nodeGrid) Detach() {
	g.container.Dispose()
}

