package core

import (
	"fmt"
	"slices"
	"strings"
)

// Grid stores a 2D grid of cells in row-major order with the origin at the
// top-left corner.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-Background grid. Non-positive dimensions panic.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// ParseGrid builds a grid from rows of glyphs ('.', '#', 'o'). All rows must
// share the same non-zero length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("core: empty grid")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("core: row %d has width %d, want %d", y, len(row), g.W)
		}
		for x := 0; x < g.W; x++ {
			c, ok := cellFromGlyph(row[x])
			if !ok {
				return nil, fmt.Errorf("core: row %d col %d: unknown glyph %q", y, x, row[x])
			}
			g.data[g.Index(x, y)] = c
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y). Coordinates
// outside the grid panic; they are never clamped or wrapped.
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: coordinate (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) Cell { return g.data[g.Index(x, y)] }

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.data[g.Index(x, y)] = c }

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	start := g.Index(0, y)
	return slices.Clone(g.data[start : start+g.W])
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.W == o.W && g.H == o.H && slices.Equal(g.data, o.data)
}

// String renders the grid one row per line using cell glyphs.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteByte(g.data[y*g.W+x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
