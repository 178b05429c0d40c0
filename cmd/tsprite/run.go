package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsprite/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Watch a scenario",
	Long: `Start the live viewer for the specified scenario.

Controls:
  Space/P    - Pause / resume
  N          - Step one tick while paused
  D          - Toggle debug overlay (checker shapes, collision marks)
  +          - Spawn a sprite
  R          - Restart with a new seed
  [ / ]      - Halve / double the time scale
  Q/Ctrl+C   - Quit

The run is stored in the runs database when the viewer exits.

Preset options:
  calm    - Start the speed ramp low and halve sprite speeds
  normal  - Start the speed ramp at 30%
  frantic - Start the speed ramp at 70% with twice the sprites
  fixed   - No speed ramp

Examples:
  tsprite run bounce
  tsprite run shapes --debug
  tsprite run depth --preset frantic
  tsprite run areas --config ./my-areas.yaml --log-file tsprite.log`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func runRun(_ *cobra.Command, args []string) {
	id := args[0]

	scfg, err := scenarioConfig(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	runErr := tui.Run(id, scfg, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", runErr)
		os.Exit(1)
	}
}
