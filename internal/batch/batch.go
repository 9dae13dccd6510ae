// Package batch generates and writes many sprites concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"spritegen/internal/core"
	"spritegen/internal/naming"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	pcore "spritegen/pkg/core"
)

// nameStream keeps file-name draws independent of sprite draws for the same seed.
const nameStream = 1

// Options controls a batch run.
type Options struct {
	Count   int
	OutDir  string
	Scale   int
	Palette render.Palette
	Config  sprite.Config
	Seed    int64
	Workers int
}

// Result describes one written sprite.
type Result struct {
	Index int
	Seed  int64
	Path  string
	Grid  *core.Grid
}

// Logf receives progress messages; log.Printf satisfies it.
type Logf func(format string, args ...any)

// Run generates opts.Count sprites and writes them as PNG files under
// opts.OutDir. Sprite i is generated from seed opts.Seed+i, so a run is
// reproducible for a given seed. Results are returned in index order; the
// first failure cancels the remaining work.
func Run(ctx context.Context, opts Options, logf Logf) ([]Result, error) {
	if opts.Count <= 0 {
		return nil, errors.New("batch: count must be positive")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	names := pcore.NewRNGStream(opts.Seed, nameStream).Source()
	results := make([]Result, opts.Count)
	for i := range results {
		results[i] = Result{
			Index: i,
			Seed:  opts.Seed + int64(i),
			Path:  filepath.Join(opts.OutDir, naming.PNGName(names)),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range results {
		res := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Grid = opts.Config.Generate(pcore.NewRNG(res.Seed))
			img := render.Scale(render.Image(res.Grid, opts.Palette), opts.Scale)
			if err := render.WriteFile(res.Path, img); err != nil {
				return fmt.Errorf("batch: sprite %d: %w", res.Index, err)
			}
			logf("wrote sprite %d (seed %d) to %s", res.Index, res.Seed, res.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
