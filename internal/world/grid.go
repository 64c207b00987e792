package world

// Grid is the rectangular map of placed tiles. Cells are either empty or hold
// exactly one PlacedTile.
type Grid struct {
	Width  int
	Height int
	cells  [][]*PlacedTile
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]*PlacedTile, height)
	for y := range cells {
		cells[y] = make([]*PlacedTile, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsEmpty returns true if the position is on the grid and holds no tile.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x] == nil
}

// At returns the tile at the given position, if any.
func (g *Grid) At(x, y int) (PlacedTile, bool) {
	if !g.InBounds(x, y) || g.cells[y][x] == nil {
		return PlacedTile{}, false
	}
	return *g.cells[y][x], true
}

// Set places a tile, replacing whatever the cell held. Out of bounds
// positions are ignored.
func (g *Grid) Set(x, y int, tile PlacedTile) {
	if g.InBounds(x, y) {
		t := tile
		g.cells[y][x] = &t
	}
}

// Remove empties a cell.
func (g *Grid) Remove(x, y int) {
	if g.InBounds(x, y) {
		g.cells[y][x] = nil
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = nil
		}
	}
}

// EmptyCells lists the empty cells in row-major order.
func (g *Grid) EmptyCells() []Point {
	empty := make([]Point, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == nil {
				empty = append(empty, Point{x, y})
			}
		}
	}
	return empty
}

// Occupied returns the number of cells holding a tile.
func (g *Grid) Occupied() int {
	count := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != nil {
				count++
			}
		}
	}
	return count
}
