// Package sprite generates small left-right symmetric pixel-art sprites.
//
// A random seed grid is smoothed by a 4-neighbour automaton, padded on three
// sides, outlined and finally mirrored across its unpadded left edge:
//
//	Seed -> Evolve -> Evolve -> Grow -> Outline -> Mirror
//
// Every stage allocates its own output grid; only Seed consumes randomness.
package sprite

import "spritegen/internal/core"

// Stages holds every intermediate grid produced while generating a sprite.
type Stages struct {
	Seed     *core.Grid
	Evolved  *core.Grid
	Grown    *core.Grid
	Outlined *core.Grid
	Final    *core.Grid
}

// Generate produces a sprite with the default configuration.
func Generate(src BoolSource) *core.Grid {
	return DefaultConfig().Generate(src)
}

// GenerateWithConfig produces a sprite using cfg. It panics when cfg is
// invalid; call Validate first for user-supplied sizes.
func GenerateWithConfig(cfg Config, src BoolSource) *core.Grid {
	return cfg.Generate(src)
}

// Generate runs the full pipeline and returns the mirrored sprite.
func (c Config) Generate(src BoolSource) *core.Grid {
	return c.GenerateStages(src).Final
}

// GenerateStages runs the full pipeline and keeps each intermediate grid.
func (c Config) GenerateStages(src BoolSource) Stages {
	var s Stages
	s.Seed = Seed(src, c.SeedWidth, c.SeedHeight)
	s.Evolved = s.Seed
	for i := 0; i < EvolvePasses; i++ {
		s.Evolved = Evolve(s.Evolved)
	}
	s.Grown = Grow(s.Evolved)
	s.Outlined = Outline(s.Grown)
	s.Final = Mirror(s.Outlined)
	return s
}
