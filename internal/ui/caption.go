//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	captionPadding    = 6
	captionLineHeight = 15
)

var captionText = color.RGBA{R: 220, G: 220, B: 230, A: 255}

// Caption draws a few lines of status text beneath the sprite.
type Caption struct {
	lines []string
}

// NewCaption constructs an empty caption.
func NewCaption() *Caption { return &Caption{} }

// SetLines replaces the caption text.
func (c *Caption) SetLines(lines ...string) {
	c.lines = append(c.lines[:0], lines...)
}

// Height returns the vertical space the caption needs.
func (c *Caption) Height() int {
	return 2*captionPadding + len(c.lines)*captionLineHeight
}

// Draw renders the caption with its top edge at y.
func (c *Caption) Draw(screen *ebiten.Image, y int) {
	face := basicfont.Face7x13
	for i, line := range c.lines {
		baseline := y + captionPadding + (i+1)*captionLineHeight - 3
		text.Draw(screen, line, face, captionPadding, baseline, captionText)
	}
}
