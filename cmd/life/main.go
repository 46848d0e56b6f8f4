//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"life-editor/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			log.Fatal(err)
		}
		// Flags given explicitly win over the file.
		if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(cfg)
	size := cfg.GridSize()
	log.Printf("board %dx%d cells at %dpx, %d generations/s", size.W, size.H, cfg.CellSize, cfg.GenerationsPerSecond)

	ebiten.SetWindowTitle("Conway's game of life!")
	ebiten.SetTPS(cfg.FrameTPS)
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
