package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List autoplay strategies",
	Long:  `Shows every strategy registered for 'slide2048 autoplay'.`,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'slide2048 autoplay --strategy <id>' to use one.")
}
