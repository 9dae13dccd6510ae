package batch

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritegen/internal/render"
	"spritegen/internal/sprite"
)

func baseOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Count:   6,
		OutDir:  t.TempDir(),
		Scale:   2,
		Palette: render.DefaultPalette(),
		Config:  sprite.DefaultConfig(),
		Seed:    100,
		Workers: 3,
	}
}

func TestRunWritesEverySprite(t *testing.T) {
	opts := baseOptions(t)
	var mu sync.Mutex
	var logged int
	results, err := Run(context.Background(), opts, func(string, ...any) {
		mu.Lock()
		logged++
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Len(t, results, opts.Count)
	assert.Equal(t, opts.Count, logged)

	seen := map[string]bool{}
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, opts.Seed+int64(i), res.Seed)
		assert.Equal(t, opts.OutDir, filepath.Dir(res.Path))
		assert.False(t, seen[res.Path], "duplicate path %s", res.Path)
		seen[res.Path] = true

		require.NotNil(t, res.Grid)
		assert.Equal(t, 10, res.Grid.W)
		assert.Equal(t, 10, res.Grid.H)

		f, err := os.Open(res.Path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Width)
		assert.Equal(t, 20, cfg.Height)
	}
}

func TestRunDeterministic(t *testing.T) {
	a, err := Run(context.Background(), baseOptions(t), nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), baseOptions(t), nil)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, filepath.Base(a[i].Path), filepath.Base(b[i].Path))
		assert.True(t, a[i].Grid.Equal(b[i].Grid), "sprite %d differs between runs", i)
	}
}

func TestRunCreatesOutputDir(t *testing.T) {
	opts := baseOptions(t)
	opts.OutDir = filepath.Join(opts.OutDir, "nested", "sprites")
	opts.Count = 1
	results, err := Run(context.Background(), opts, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.FileExists(t, results[0].Path)
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := baseOptions(t)
	opts.Count = 0
	_, err := Run(context.Background(), opts, nil)
	assert.Error(t, err)

	opts = baseOptions(t)
	opts.Config = sprite.Config{SeedWidth: 0, SeedHeight: 8}
	_, err = Run(context.Background(), opts, nil)
	assert.ErrorIs(t, err, sprite.ErrInvalidSize)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, baseOptions(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunReportsWriteFailure(t *testing.T) {
	opts := baseOptions(t)
	// A regular file where the output directory should be.
	blocker := filepath.Join(opts.OutDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	opts.OutDir = blocker
	_, err := Run(context.Background(), opts, nil)
	assert.Error(t, err)
}
