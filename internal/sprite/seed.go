package sprite

import "spritegen/internal/core"

// BoolSource yields independent fair coin flips. pkg/core.RNG satisfies it.
type BoolSource interface {
	Bool() bool
}

// Seed fills a w*h grid with Color or Background, one independent draw per
// cell in row-major order.
func Seed(src BoolSource, w, h int) *core.Grid {
	g := core.NewGrid(w, h)
	cells := g.Cells()
	for i := range cells {
		if src.Bool() {
			cells[i] = core.Color
		}
	}
	return g
}
