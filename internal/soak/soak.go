// Package soak runs batches of randomly seeded boards headlessly and reports
// how each one ends up. Boards run concurrently; every engine is only ever
// touched by the goroutine that owns it.
package soak

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-editor/internal/life"
)

// Options controls a soak run.
type Options struct {
	Boards      int
	Width       int
	Height      int
	Generations int
	Density     float64
	Seed        int64
	Workers     int
}

// DefaultOptions matches the interactive board size.
func DefaultOptions() Options {
	return Options{
		Boards:      16,
		Width:       102,
		Height:      102,
		Generations: 1000,
		Density:     0.25,
		Seed:        42,
		Workers:     runtime.NumCPU(),
	}
}

// Result describes how one board finished.
type Result struct {
	Board       int
	Seed        int64
	Generations int
	Population  int
	// Settled is set when the board reached a still life or a period-2
	// oscillation before the generation limit.
	Settled bool
	Period  int
}

// Validate reports the first option that cannot be run.
func (o Options) Validate() error {
	switch {
	case o.Boards <= 0:
		return errors.Errorf("boards must be positive, got %d", o.Boards)
	case o.Width <= 0 || o.Height <= 0:
		return errors.Errorf("board must be positive, got %dx%d", o.Width, o.Height)
	case o.Generations < 0:
		return errors.Errorf("generations must not be negative, got %d", o.Generations)
	case o.Density < 0 || o.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %g", o.Density)
	}
	return nil
}

// Run simulates opts.Boards boards seeded opts.Seed, opts.Seed+1, ... and
// returns their results ordered by board index.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid soak options")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Boards)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Boards {
		g.Go(func() error {
			r, err := runBoard(ctx, i, opts)
			if err != nil {
				return errors.Wrapf(err, "board %d", i)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

const cancelCheckInterval = 64

func runBoard(ctx context.Context, idx int, opts Options) (Result, error) {
	seed := opts.Seed + int64(idx)
	e := life.New(opts.Width, opts.Height)
	e.Randomize(seed, opts.Density)

	res := Result{Board: idx, Seed: seed}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	last, beforeLast := e.Hash(), ""
	for gen := 1; gen <= opts.Generations; gen++ {
		if gen%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		e.Advance()
		h := e.Hash()
		if h == last {
			res.Settled, res.Period = true, 1
			break
		}
		if h == beforeLast {
			res.Settled, res.Period = true, 2
			break
		}
		last, beforeLast = h, last
	}
	res.Generations = e.Generation()
	res.Population = e.Population()
	return res, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Boards         int
	Settled        int
	MeanPopulation float64
	MaxGenerations int
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Boards: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		if r.Settled {
			s.Settled++
		}
		total += r.Population
		s.MaxGenerations = max(s.MaxGenerations, r.Generations)
	}
	s.MeanPopulation = float64(total) / float64(len(results))
	return s
}
