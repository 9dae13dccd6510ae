package sprite

import "spritegen/internal/core"

// EvolvePasses is the number of automaton passes applied to the seed grid.
const EvolvePasses = 2

// orthogonal neighbour offsets: left, up, right, down.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// CountNeighbors counts Color cells among the four orthogonal neighbours of
// (x, y). Neighbours outside the grid are absent, not wrapped.
func CountNeighbors(g *core.Grid, x, y int) int {
	count := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.Get(nx, ny) == core.Color {
			count++
		}
	}
	return count
}

// Evolve applies one automaton pass and returns a new grid of the same size.
// Every output cell is computed from the unmodified input:
//
//	empty cell: becomes Color when it has at most one Color neighbour
//	Color cell: survives with exactly two or three Color neighbours
func Evolve(g *core.Grid) *core.Grid {
	out := core.NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := CountNeighbors(g, x, y)
			alive := g.Get(x, y) == core.Color
			if (alive && (n == 2 || n == 3)) || (!alive && n <= 1) {
				out.Set(x, y, core.Color)
			}
		}
	}
	return out
}
