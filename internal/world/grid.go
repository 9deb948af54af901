package world

import "fmt"

// Grid is a fixed-size array of terrain cells, indexed [y][x].
type Grid struct {
	Width  int
	Height int
	cells  [][]Terrain
}

// NewGrid creates a grid filled with default terrain.
// It panics if either dimension is not positive.
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}

	cells := make([][]Terrain, height)
	for y := range cells {
		cells[y] = make([]Terrain, width)
		for x := range cells[y] {
			cells[y][x] = DefaultTerrain()
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// InBounds returns true if the given position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the terrain at row y, column x.
// Callers must bounds-check first; out-of-range indices panic.
func (g *Grid) At(y, x int) Terrain {
	return g.cells[y][x]
}

// Traversable returns true if an actor may stand on row y, column x.
func (g *Grid) Traversable(y, x int) bool {
	return g.cells[y][x].Traversable
}

// GlyphAt returns the terrain glyph at row y, column x.
func (g *Grid) GlyphAt(y, x int) rune {
	return g.cells[y][x].Glyph
}

// SetTerrain overwrites a cell, deriving traversability from the glyph.
func (g *Grid) SetTerrain(y, x int, glyph rune) {
	g.cells[y][x] = NewTerrain(glyph)
}

// SetTerrainExplicit overwrites a cell with an explicit traversability.
func (g *Grid) SetTerrainExplicit(y, x int, glyph rune, traversable bool) {
	g.cells[y][x] = Terrain{Glyph: glyph, Traversable: traversable}
}

// CanEnter returns true if the position is on the grid and traversable.
func (g *Grid) CanEnter(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x].Traversable
}
