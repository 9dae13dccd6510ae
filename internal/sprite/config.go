package sprite

import (
	"errors"
	"fmt"
	"strconv"

	"spritegen/internal/core"
)

// ErrInvalidSize reports a seed grid with a non-positive dimension.
var ErrInvalidSize = errors.New("sprite: invalid seed size")

// Config controls the geometry of generated sprites. Only the seed grid is
// configurable; growth and mirroring derive the rest.
type Config struct {
	SeedWidth  int
	SeedHeight int
}

// DefaultConfig returns the 4x8 seed that yields 10x10 sprites.
func DefaultConfig() Config {
	return Config{SeedWidth: 4, SeedHeight: 8}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SeedHeight = parsed
		}
	}
	return c
}

// Validate reports whether the config describes a usable seed grid.
func (c Config) Validate() error {
	if c.SeedWidth <= 0 || c.SeedHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.SeedWidth, c.SeedHeight)
	}
	return nil
}

// SeedSize returns the dimensions of the random seed grid.
func (c Config) SeedSize() core.Size {
	return core.Size{W: c.SeedWidth, H: c.SeedHeight}
}

// GrownSize returns the dimensions after padding top, right and bottom.
func (c Config) GrownSize() core.Size {
	return core.Size{W: c.SeedWidth + 1, H: c.SeedHeight + 2}
}

// FinalSize returns the dimensions of the mirrored sprite.
func (c Config) FinalSize() core.Size {
	g := c.GrownSize()
	return core.Size{W: 2 * g.W, H: g.H}
}

// Parameters describes the geometry for display next to a sprite.
func (c Config) Parameters() core.ParameterSnapshot {
	final := c.FinalSize()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Geometry",
			Params: []core.Parameter{
				intParam("w", "Seed width", c.SeedWidth),
				intParam("h", "Seed height", c.SeedHeight),
				sizeParam("final", "Sprite", final),
			},
		},
		{
			Name: "Pipeline",
			Params: []core.Parameter{
				intParam("passes", "Evolution passes", EvolvePasses),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func sizeParam(key, label string, s core.Size) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: fmt.Sprintf("%dx%d", s.W, s.H),
	}
}
