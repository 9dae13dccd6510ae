package sprite

import "spritegen/internal/core"

// Outline returns a copy of g in which every Background cell touching a
// Color cell (4-neighbourhood) becomes Outline.
func Outline(g *core.Grid) *core.Grid {
	out := g.Clone()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) == core.Background && CountNeighbors(g, x, y) > 0 {
				out.Set(x, y, core.Outline)
			}
		}
	}
	return out
}
