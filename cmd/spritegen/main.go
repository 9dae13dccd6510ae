package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"spritegen/internal/app"
	"spritegen/internal/batch"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindBatch(flag.CommandLine)
	flag.Parse()

	spriteCfg, err := cfg.SpriteConfig()
	if err != nil {
		log.Fatalf("invalid geometry: %v", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatalf("invalid palette: %v", err)
	}
	seed := cfg.ResolveSeed(time.Now())

	var logf batch.Logf
	if cfg.Verbose {
		logf = log.Printf
		log.Printf("seed %d", seed)
		for _, line := range spriteCfg.Parameters().Lines() {
			log.Print(line)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, batch.Options{
		Count:   cfg.Count,
		OutDir:  cfg.Out,
		Scale:   cfg.Scale,
		Palette: palette,
		Config:  spriteCfg,
		Seed:    seed,
		Workers: cfg.Workers,
	}, logf)
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Println(res.Path)
		if cfg.Print {
			fmt.Print(res.Grid)
		}
	}
}
