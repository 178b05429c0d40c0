package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows a list of all scenarios registered in the sandbox.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Sprites")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, s := range scenarios {
		detail := "-"
		if cfg, err := config.Load(s.ID, ""); err == nil {
			detail = fmt.Sprintf("%d x %s", cfg.Sprites.Count, checkerName(cfg.Sprites.Checker))
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, detail)
	}

	fmt.Println()
	fmt.Println("Run 'tsprite run <id>' to watch a scenario.")
}

func checkerName(kind string) string {
	if kind == "" {
		return config.CheckerAABB
	}
	return kind
}
