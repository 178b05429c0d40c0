// tsprite is a terminal sandbox for 2-D sprite movement and collision
// detection.
//
// Usage:
//
//	tsprite                      - Pick a scenario interactively
//	tsprite list                 - List available scenarios
//	tsprite run <scenario>       - Watch a scenario in the terminal
//	tsprite sim <scenario>       - Run a scenario headless and print stats
//	tsprite bench [scenario...]  - Run many seeds of scenarios concurrently
//	tsprite runs [scenario]      - Browse stored runs
//	tsprite config <scenario>    - Print the effective scenario config
//	tsprite serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>      - Override the scenario tick rate
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.tsprite/runs.db)
//	--config <path>   - Load the scenario config from a YAML file
//	--preset <name>   - Pacing preset: calm, normal, frantic, fixed
//	--debug           - Log collisions and draw checker overlays
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/platform/tui"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/storage"

	// Import scenarios to register them
	_ "github.com/vovakirdan/tsprite/internal/scenarios"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPreset  string
	flagDebug   bool
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tsprite",
	Short: "tsprite - watch sprites move and collide in your terminal",
	Long: `tsprite is a terminal sandbox for 2-D sprite collision detection.
Scenarios move sprites inside a bounding panel and bounce them off each
other using bounding boxes, multi-rectangle areas or SAT shapes.

Available commands:
  list     - Show all available scenarios
  run      - Watch a specific scenario
  sim      - Run a scenario headless
  bench    - Run scenarios concurrently and compare
  runs     - Browse stored runs
  config   - Print the effective scenario config
  serve    - Start SSH server for remote viewing

Examples:
  tsprite
  tsprite run shapes --debug
  tsprite sim random --ticks 5000 --seed 7
  tsprite bench --seeds 8
  tsprite serve --ssh :2222`,
	Run: runSession,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = scenario tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = scenario seed, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tsprite/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scenario config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Pacing preset: calm, normal, frantic, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log collisions and draw checker overlays")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs of interactive commands to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the logger used by commands that own the terminal's
// standard streams.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tsprite",
	})
	if flagVerbose || flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger returns a logger for full-screen commands: a file logger when
// --log-file is set, nil otherwise. The returned func closes the file.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// scenarioConfig loads the config of scenario id and applies the global
// config, preset and debug flags.
func scenarioConfig(id string) (config.ScenarioConfig, error) {
	if !registry.Exists(id) {
		return config.ScenarioConfig{}, fmt.Errorf("unknown scenario %q (run 'tsprite list' to see available scenarios)", id)
	}

	cfg, err := config.Load(id, flagConfig)
	if err != nil {
		return config.ScenarioConfig{}, err
	}

	switch preset := config.Preset(flagPreset); preset {
	case "":
	case config.PresetCalm, config.PresetNormal, config.PresetFrantic, config.PresetFixed:
		config.ApplyPreset(&cfg, preset)
	default:
		return config.ScenarioConfig{}, fmt.Errorf("unknown preset %q", flagPreset)
	}

	if flagFPS > 0 {
		cfg.World.TickRate = flagFPS
	}
	cfg.Debug = cfg.Debug || flagDebug
	return cfg, nil
}

// runtimeConfig describes the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug
	return cfg
}

// openStore opens the run database, warning and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func runSession(_ *cobra.Command, _ []string) {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	runErr := tui.RunSession(store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
