package render

import (
	"image/color"

	"spritegen/internal/core"
)

// FillRGBA converts cells into RGBA pixels in buf using a palette indexed by
// cell state. When the palette is empty the buffer is cleared to transparent
// black; states past the end of the palette use its last entry.
func FillRGBA(buf []byte, cells []core.Cell, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
