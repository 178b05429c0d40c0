package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/storage"
)

var (
	flagBenchTicks int
	flagBenchSeeds int
	flagBenchJobs  int
	flagBenchSave  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [scenario...]",
	Short: "Run scenarios concurrently and compare",
	Long: `Run every listed scenario (all scenarios if none are given) with
several consecutive seeds, each world on its own goroutine, and print
collision rates and throughput per run.

Examples:
  tsprite bench
  tsprite bench shapes areas --seeds 8 --ticks 5000
  tsprite bench random --jobs 2 --save`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 2000, "Ticks per run")
	benchCmd.Flags().IntVar(&flagBenchSeeds, "seeds", 4, "Seeds per scenario")
	benchCmd.Flags().IntVar(&flagBenchJobs, "jobs", runtime.NumCPU(), "Runs in flight at once (0 = unlimited)")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Store every run")
}

func runBench(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	ids := args
	if len(ids) == 0 {
		for _, s := range registry.List() {
			ids = append(ids, s.ID)
		}
	}

	type meta struct {
		id   string
		seed int64
	}
	var (
		jobs  []sim.Job
		metas []meta
	)
	for _, id := range ids {
		cfg, err := scenarioConfig(id)
		if err != nil {
			logger.Fatal("cannot load scenario", "scenario", id, "error", err)
		}
		base := resolveSeed(cfg)
		for i := range flagBenchSeeds {
			seed := base + int64(i)
			w, err := registry.Build(id, cfg, seed, sim.WithLogger(logger))
			if err != nil {
				logger.Fatal("cannot build scenario", "scenario", id, "error", err)
			}
			jobs = append(jobs, sim.Job{
				Name:  fmt.Sprintf("%s/%d", id, seed),
				World: w,
				Ticks: flagBenchTicks,
				DT:    tickMillis(cfg),
			})
			metas = append(metas, meta{id: id, seed: seed})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := sim.RunBatch(ctx, jobs, flagBenchJobs)
	if err != nil {
		logger.Fatal("bench failed", "error", err)
	}

	fmt.Printf("  %-24s %8s %10s %10s %12s\n", "Run", "Ticks", "Hits", "Hits/tick", "Ticks/s")
	fmt.Printf("  %-24s %8s %10s %10s %12s\n", "---", "-----", "----", "---------", "-------")
	for _, r := range results {
		perTick, perSec := 0.0, 0.0
		if r.Stats.Ticks > 0 {
			perTick = float64(r.Stats.Collisions) / float64(r.Stats.Ticks)
		}
		if s := r.Elapsed.Seconds(); s > 0 {
			perSec = float64(r.Stats.Ticks) / s
		}
		fmt.Printf("  %-24s %8d %10d %10.3f %12.0f\n", r.Name, r.Stats.Ticks, r.Stats.Collisions, perTick, perSec)
	}

	if !flagBenchSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open runs database", "error", err)
	}
	defer store.Close()
	for i, r := range results {
		if _, err := store.SaveRun(runRecord(metas[i].id, metas[i].seed, r.Stats, r.Elapsed)); err != nil {
			logger.Error("could not save run", "run", r.Name, "error", err)
		}
	}
	fmt.Printf("\nSaved %d runs\n", len(results))
}
