//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"spritegen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 24
	cfg.Bind(flag.CommandLine)
	cfg.BindPreview(flag.CommandLine)
	flag.Parse()

	spriteCfg, err := cfg.SpriteConfig()
	if err != nil {
		log.Fatalf("invalid geometry: %v", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatalf("invalid palette: %v", err)
	}

	preview := app.NewPreview(spriteCfg, palette, cfg.Scale, cfg.ResolveSeed(time.Now()))
	w, h := preview.WindowSize()

	ebiten.SetWindowTitle("spritegen preview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(preview); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
