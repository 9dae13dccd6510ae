package sprite

import "spritegen/internal/core"

// Grow embeds g into a grid one column wider and two rows taller, padding
// the top, right and bottom with Background. The left edge stays unpadded
// because Mirror reflects across it.
func Grow(g *core.Grid) *core.Grid {
	out := core.NewGrid(g.W+1, g.H+2)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.Set(x, y+1, g.Get(x, y))
		}
	}
	return out
}
