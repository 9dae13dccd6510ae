//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"spritegen/internal/core"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	"spritegen/internal/ui"
	pcore "spritegen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	autoPeriod    = time.Second
	minPanelWidth = 280
)

var backdrop = color.RGBA{R: 40, G: 40, B: 48, A: 255}

// Preview adapts the sprite generator to the ebiten.Game interface.
type Preview struct {
	cfg     sprite.Config
	palette render.Palette
	scale   int
	seed    int64

	grid    *core.Grid
	img     *ebiten.Image
	buf     []byte
	caption *ui.Caption

	auto     bool
	interval *core.Interval
}

// NewPreview constructs a Preview showing the sprite for seed.
func NewPreview(cfg sprite.Config, palette render.Palette, scale int, seed int64) *Preview {
	if scale <= 0 {
		scale = 1
	}
	size := cfg.FinalSize()
	p := &Preview{
		cfg:      cfg,
		palette:  palette,
		scale:    scale,
		img:      ebiten.NewImage(size.W, size.H),
		buf:      make([]byte, 4*size.W*size.H),
		caption:  ui.NewCaption(),
		interval: core.NewInterval(autoPeriod),
	}
	p.Regenerate(seed)
	return p
}

// Regenerate replaces the sprite with the one produced by seed.
func (p *Preview) Regenerate(seed int64) {
	p.seed = seed
	p.grid = p.cfg.Generate(pcore.NewRNG(seed))
	p.repaint()
}

func (p *Preview) repaint() {
	render.FillRGBA(p.buf, p.grid.Cells(), p.palette.RGBA())
	p.img.WritePixels(p.buf)

	lines := []string{fmt.Sprintf("seed %d", p.seed)}
	lines = append(lines, p.cfg.Parameters().Lines()...)
	mode := "off"
	if p.auto {
		mode = "on"
	}
	lines = append(lines,
		fmt.Sprintf("auto %s  transparent %v", mode, p.palette.Transparent),
		"space/n next  r redo  a auto",
		"t transparency  q quit",
	)
	p.caption.SetLines(lines...)
}

// Update handles key presses and the auto-regenerate cadence.
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.Regenerate(p.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.Regenerate(p.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		p.auto = !p.auto
		p.interval.Reset()
		p.repaint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		p.palette.Transparent = !p.palette.Transparent
		p.repaint()
	}
	if p.auto && p.interval.Due() {
		p.Regenerate(p.seed + 1)
	}
	return nil
}

// Draw renders the sprite above its caption.
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	screen.DrawImage(p.img, op)
	p.caption.Draw(screen, p.grid.H*p.scale)
}

// Layout returns the logical screen size.
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.WindowSize()
}

// WindowSize reports the unscaled window dimensions.
func (p *Preview) WindowSize() (int, int) {
	size := p.cfg.FinalSize()
	w := size.W * p.scale
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w, size.H*p.scale + p.caption.Height()
}
