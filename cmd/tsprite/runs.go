package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsprite/internal/platform/tui"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
	flagRunsID    string
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Browse stored runs",
	Long: `Browse the runs stored by 'run', 'sim' and 'bench'.

On a terminal this opens an interactive browser. With --plain, or when
output is not a terminal, the most recent runs are printed instead.

Examples:
  tsprite runs
  tsprite runs shapes --plain --limit 20
  tsprite runs --id 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  tsprite runs random --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs instead of opening the browser")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print")
	runsCmd.Flags().StringVar(&flagRunsID, "id", "", "Show a single run")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all runs of the scenario")
}

func runRuns(_ *cobra.Command, args []string) {
	scenario := ""
	if len(args) == 1 {
		scenario = args[0]
		if !registry.Exists(scenario) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenario)
			fmt.Fprintln(os.Stderr, "Run 'tsprite list' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunsID != "":
		err = showRun(store, flagRunsID)
	case flagRunsClear:
		err = clearRuns(store, scenario)
	case flagRunsPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printRuns(store, scenario)
	default:
		cfg := runtimeConfig()
		err = tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showRun(store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("run %q not found", id)
	}

	fmt.Printf("Run %s\n", r.ID)
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "Scenario", r.Scenario)
	fmt.Printf("  %-12s %d\n", "Seed", r.Seed)
	fmt.Printf("  %-12s %d\n", "Ticks", r.Ticks)
	fmt.Printf("  %-12s %d\n", "Collisions", r.Collisions)
	fmt.Printf("  %-12s %d\n", "Wall hits", r.WallHits)
	fmt.Printf("  %-12s %d\n", "Spawned", r.Spawned)
	fmt.Printf("  %-12s %d\n", "Purged", r.Purged)
	fmt.Printf("  %-12s %d\n", "Peak active", r.PeakActive)
	fmt.Printf("  %-12s %s\n", "Duration", r.Duration)
	fmt.Printf("  %-12s %s\n", "Date", r.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func clearRuns(store *storage.Store, scenario string) error {
	if scenario == "" {
		return fmt.Errorf("--clear needs a scenario")
	}
	n, err := store.RunCount(scenario)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(scenario); err != nil {
		return err
	}
	fmt.Printf("Deleted %d runs of %s\n", n, scenario)
	return nil
}

func printRuns(store *storage.Store, scenario string) error {
	runs, err := store.RecentRuns(scenario, flagRunsLimit)
	if err != nil {
		return err
	}

	title := "all scenarios"
	if scenario != "" {
		title = scenario
	}
	fmt.Printf("Recent runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-36s  %-8s  %7s  %7s  %9s  %s\n", "ID", "Scenario", "Ticks", "Hits", "Duration", "Date")
	fmt.Printf("  %-36s  %-8s  %7s  %7s  %9s  %s\n", "--", "--------", "-----", "----", "--------", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-8s  %7d  %7d  %9s  %s\n",
			r.ID, r.Scenario, r.Ticks, r.Collisions,
			r.Duration.Round(time.Millisecond), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if scenario == "" {
		return nil
	}
	stats, err := store.GetScenarioStats(scenario)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%d runs, %.3f collisions per tick, best %d\n",
		stats.Runs, stats.CollisionsPerTick(), stats.MaxCollisions)
	return nil
}
