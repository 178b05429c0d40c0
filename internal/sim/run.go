package sim

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run steps w for ticks fixed steps of dt milliseconds, or until ctx is
// done. It returns the world's stats and ctx.Err() on cancellation.
func Run(ctx context.Context, w *World, ticks int, dt float64) (Stats, error) {
	for range ticks {
		if err := ctx.Err(); err != nil {
			return w.Stats(), err
		}
		w.Step(dt)
	}
	return w.Stats(), nil
}

// Job is one headless run for RunBatch.
type Job struct {
	Name  string
	World *World
	Ticks int
	DT    float64 // Milliseconds per tick
}

// Result is the outcome of one Job.
type Result struct {
	Name    string
	Stats   Stats
	Elapsed time.Duration
}

// RunBatch runs every job on its own goroutine, at most limit at a time
// (limit <= 0 means no limit). Results keep the order of jobs. The first
// failing job cancels the others.
func RunBatch(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			start := time.Now()
			stats, err := Run(gctx, job.World, job.Ticks, job.DT)
			if err != nil {
				return fmt.Errorf("sim: run %s: %w", job.Name, err)
			}
			results[i] = Result{Name: job.Name, Stats: stats, Elapsed: time.Since(start)}
			job.World.Logger().Info("run finished", "name", job.Name, "ticks", stats.Ticks,
				"collisions", stats.Collisions, "elapsed", results[i].Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
