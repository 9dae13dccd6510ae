package sprite

import "spritegen/internal/core"

// Mirror doubles the width of g: each output row is the input row reversed
// followed by the row itself, so the seam sits between columns W-1 and W.
func Mirror(g *core.Grid) *core.Grid {
	out := core.NewGrid(2*g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.Get(x, y)
			out.Set(g.W-1-x, y, c)
			out.Set(g.W+x, y, c)
		}
	}
	return out
}
