//go:build !ebiten

package app

import (
	"fmt"

	"spritegen/internal/render"
	"spritegen/internal/sprite"
)

// Preview is a placeholder that satisfies the API expected by the GUI build.
type Preview struct{}

// NewPreview panics to indicate that the ebiten build tag is required for GUI support.
func NewPreview(sprite.Config, render.Palette, int, int64) *Preview {
	panic("app.NewPreview requires building with the 'ebiten' tag")
}

// Regenerate is a no-op placeholder.
func (p *Preview) Regenerate(int64) {}

// Update always reports that the GUI build tag is missing.
func (p *Preview) Update() error {
	return fmt.Errorf("app.Preview.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (p *Preview) Draw(any) {}

// Layout returns zeros in the headless build.
func (p *Preview) Layout(int, int) (int, int) { return 0, 0 }

// WindowSize returns zeros in the headless build.
func (p *Preview) WindowSize() (int, int) { return 0, 0 }
