package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsprite/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <scenario>",
	Short: "Print the effective scenario config",
	Long: `Print the YAML config a scenario would run with after applying
--config, --preset, --fps and --debug. Save the output under
~/.tsprite/configs/<scenario>.yaml to make it the new default.

Examples:
  tsprite config shapes
  tsprite config random --preset frantic > ~/.tsprite/configs/random.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	cfg, err := scenarioConfig(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
