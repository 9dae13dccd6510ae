//go:build !ebiten

package ui

// Caption is a no-op placeholder used when the ebiten build tag is absent.
type Caption struct{}

// NewCaption constructs a stub caption.
func NewCaption() *Caption { return &Caption{} }

// SetLines is a no-op in headless builds.
func (c *Caption) SetLines(...string) {}

// Height is zero in headless builds.
func (c *Caption) Height() int { return 0 }

// Draw is a no-op placeholder.
func (c *Caption) Draw(any, int) {}
