package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/storage"
)

var (
	flagTicks  int
	flagNoSave bool
)

var simCmd = &cobra.Command{
	Use:   "sim <scenario>",
	Short: "Run a scenario headless",
	Long: `Step a scenario without a display and print its statistics.
The run is stored in the runs database unless --no-save is given.
Ctrl+C stops the run early; the partial run is still reported.

Examples:
  tsprite sim bounce
  tsprite sim random --ticks 10000 --seed 7
  tsprite sim shapes --debug --ticks 100`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the run")
}

// resolveSeed picks the --seed flag, then the scenario seed, then the clock.
func resolveSeed(cfg config.ScenarioConfig) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfg.World.Seed != 0:
		return cfg.World.Seed
	default:
		return time.Now().UnixNano()
	}
}

// tickMillis returns the fixed step of cfg in milliseconds.
func tickMillis(cfg config.ScenarioConfig) float64 {
	return 1000.0 / float64(cfg.World.TickRate)
}

func runSim(_ *cobra.Command, args []string) {
	id := args[0]
	logger := newLogger(os.Stderr)

	cfg, err := scenarioConfig(id)
	if err != nil {
		logger.Fatal("cannot load scenario", "scenario", id, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := resolveSeed(cfg)
	w, err := registry.Build(id, cfg, seed, sim.WithLogger(logger))
	if err != nil {
		logger.Fatal("cannot build scenario", "scenario", id, "error", err)
	}

	logger.Info("simulating", "scenario", id, "seed", seed, "ticks", flagTicks, "sprites", len(w.Sprites))
	start := time.Now()
	stats, runErr := sim.Run(ctx, w, flagTicks, tickMillis(cfg))
	elapsed := time.Since(start)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Fatal("simulation failed", "error", runErr)
	}
	if runErr != nil {
		logger.Warn("interrupted", "ticks", stats.Ticks)
	}

	printStats(id, seed, stats, elapsed)

	if flagNoSave || stats.Ticks == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(runRecord(id, seed, stats, elapsed))
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	fmt.Printf("Saved run %s\n", runID)
}

func runRecord(id string, seed int64, stats sim.Stats, elapsed time.Duration) storage.RunRecord {
	return storage.RunRecord{
		Scenario:   id,
		Seed:       seed,
		Ticks:      stats.Ticks,
		Collisions: stats.Collisions,
		WallHits:   stats.WallHits,
		Purged:     stats.Purged,
		Spawned:    stats.Spawned,
		PeakActive: stats.PeakActive,
		Duration:   elapsed,
	}
}

func printStats(id string, seed int64, stats sim.Stats, elapsed time.Duration) {
	fmt.Printf("Scenario %s (seed %d)\n", id, seed)
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Ticks", stats.Ticks)
	fmt.Printf("  %-12s %d\n", "Collisions", stats.Collisions)
	fmt.Printf("  %-12s %d\n", "Wall hits", stats.WallHits)
	fmt.Printf("  %-12s %d\n", "Spawned", stats.Spawned)
	fmt.Printf("  %-12s %d\n", "Purged", stats.Purged)
	fmt.Printf("  %-12s %d\n", "Peak active", stats.PeakActive)
	fmt.Printf("  %-12s %s\n", "Elapsed", elapsed.Round(time.Microsecond))
	fmt.Println()
}
