package app

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"spritegen/internal/render"
	"spritegen/internal/sprite"
)

// Config represents the command-line parameters shared by the CLI and the
// preview window.
type Config struct {
	Seed        int64
	Scale       int
	Width       int
	Height      int
	Background  string
	Foreground  string
	Outline     string
	Transparent bool

	Count   int
	Out     string
	Workers int
	Print   bool
	Verbose bool

	TPS int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	sc := sprite.DefaultConfig()
	return &Config{
		Scale:      1,
		Width:      sc.SeedWidth,
		Height:     sc.SeedHeight,
		Background: "#ffffff",
		Foreground: "#00ff00",
		Outline:    "#00b400",
		Count:      1,
		Out:        ".",
		Workers:    runtime.NumCPU(),
		TPS:        60,
	}
}

// Bind attaches the sprite and palette flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sprite generation (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Width, "w", c.Width, "seed grid width")
	fs.IntVar(&c.Height, "h", c.Height, "seed grid height")
	fs.StringVar(&c.Background, "bg", c.Background, "background color (hex)")
	fs.StringVar(&c.Foreground, "fg", c.Foreground, "body color (hex)")
	fs.StringVar(&c.Outline, "outline", c.Outline, "outline color (hex)")
	fs.BoolVar(&c.Transparent, "transparent", c.Transparent, "render the background transparent")
}

// BindBatch attaches the file-output flags used by the headless CLI.
func (c *Config) BindBatch(fs *flag.FlagSet) {
	fs.IntVar(&c.Count, "n", c.Count, "number of sprites to generate")
	fs.StringVar(&c.Out, "out", c.Out, "output directory")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel sprite writers")
	fs.BoolVar(&c.Print, "print", c.Print, "print each sprite as text")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log progress and parameters")
}

// BindPreview attaches the flags specific to the preview window.
func (c *Config) BindPreview(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// SpriteConfig returns the validated generator geometry.
func (c *Config) SpriteConfig() (sprite.Config, error) {
	sc := sprite.Config{SeedWidth: c.Width, SeedHeight: c.Height}
	if err := sc.Validate(); err != nil {
		return sprite.Config{}, err
	}
	return sc, nil
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	p := render.Palette{Transparent: c.Transparent}
	var err error
	if p.Background, err = render.ParseHexColor(c.Background); err != nil {
		return p, fmt.Errorf("-bg: %w", err)
	}
	if p.Color, err = render.ParseHexColor(c.Foreground); err != nil {
		return p, fmt.Errorf("-fg: %w", err)
	}
	if p.Outline, err = render.ParseHexColor(c.Outline); err != nil {
		return p, fmt.Errorf("-outline: %w", err)
	}
	return p, nil
}

// ResolveSeed replaces a zero seed with one derived from now.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c.Seed
}
