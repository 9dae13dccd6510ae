package core

// Size describes the dimensions of a sprite grid.
type Size struct {
	W int
	H int
}

// Cell enumerates the states a sprite pixel can take.
type Cell uint8

const (
	// Background cells are left unpainted (or transparent).
	Background Cell = iota
	// Color cells form the body of the sprite.
	Color
	// Outline cells hug the silhouette of the body.
	Outline
)

// String returns a lowercase name for the cell state.
func (c Cell) String() string {
	switch c {
	case Background:
		return "background"
	case Color:
		return "color"
	case Outline:
		return "outline"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character form used by Grid.String and ParseGrid.
func (c Cell) Glyph() byte {
	switch c {
	case Color:
		return '#'
	case Outline:
		return 'o'
	default:
		return '.'
	}
}

func cellFromGlyph(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Background, true
	case '#':
		return Color, true
	case 'o':
		return Outline, true
	}
	return Background, false
}
