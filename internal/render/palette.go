package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"spritegen/internal/core"
)

// Palette maps each cell state to a color. When Transparent is set the
// Background color is ignored and background pixels are fully transparent.
type Palette struct {
	Background  color.NRGBA
	Color       color.NRGBA
	Outline     color.NRGBA
	Transparent bool
}

// DefaultPalette returns a white background with a green body and a darker
// green outline.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Color:      color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		Outline:    color.NRGBA{R: 0, G: 180, B: 0, A: 255},
	}
}

// ColorOf returns the color used for c. Unknown states render as background.
func (p Palette) ColorOf(c core.Cell) color.NRGBA {
	switch c {
	case core.Color:
		return p.Color
	case core.Outline:
		return p.Outline
	default:
		if p.Transparent {
			return color.NRGBA{}
		}
		return p.Background
	}
}

// RGBA returns the palette indexed by cell state, premultiplied for buffers
// that expect color.RGBA values.
func (p Palette) RGBA() []color.RGBA {
	out := make([]color.RGBA, 3)
	for i, c := range []core.Cell{core.Background, core.Color, core.Outline} {
		r, g, b, a := p.ColorOf(c).RGBA()
		out[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}
	return out
}

// ParseHexColor parses "#rrggbb", "rrggbb" or the short "#rgb" form into an
// opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("render: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("render: invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
