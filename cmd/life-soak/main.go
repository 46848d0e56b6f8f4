package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"life-editor/internal/soak"
)

func main() {
	def := soak.DefaultOptions()
	boards := flag.Int("boards", def.Boards, "number of boards to simulate")
	width := flag.Int("width", def.Width, "board width in cells")
	height := flag.Int("height", def.Height, "board height in cells")
	gens := flag.Int("generations", def.Generations, "generation limit per board")
	density := flag.Float64("density", def.Density, "initial live cell probability")
	seed := flag.Int64("seed", def.Seed, "seed of the first board; board i uses seed+i")
	workers := flag.Int("workers", def.Workers, "parallel board evaluations")
	verbose := flag.Bool("v", false, "print one line per board")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := soak.Run(ctx, soak.Options{
		Boards:      *boards,
		Width:       *width,
		Height:      *height,
		Generations: *gens,
		Density:     *density,
		Seed:        *seed,
		Workers:     *workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		for _, r := range results {
			status := "running"
			if r.Settled {
				status = fmt.Sprintf("settled (period %d)", r.Period)
			}
			fmt.Printf("board %3d seed %d: gen %d, population %d, %s\n", r.Board, r.Seed, r.Generations, r.Population, status)
		}
	}

	s := soak.Summarize(results)
	fmt.Printf("%d boards %dx%d: %d settled, mean population %.1f, longest run %d generations\n",
		s.Boards, *width, *height, s.Settled, s.MeanPopulation, s.MaxGenerations)
}
