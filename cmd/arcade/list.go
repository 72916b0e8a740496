package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, in catalog order.`,
	RunE:  runList,
}

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Show the game catalog as cards",
	Long: `Prints one card per game of the hub catalog. Duplicate catalog
entries are shown once.

Examples:
  arcade hub
  arcade hub --catalog ./games.yaml`,
	RunE: runHub,
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := registry.LoadCatalog(flagCatalog)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5
	for _, r := range records {
		maxIDLen = max(maxIDLen, len(r.ID))
		maxTitleLen = max(maxTitleLen, len(r.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Scores")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, r := range records {
		info, ok := registry.Info(r.ID)
		if !ok {
			fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, "(not installed)")
			continue
		}
		order := "higher is better"
		if info.Order == core.LowerIsBetter {
			order = "lower is better"
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, order)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}

func runHub(cmd *cobra.Command, args []string) error {
	records, err := registry.LoadCatalog(flagCatalog)
	if err != nil {
		return err
	}

	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}
	fmt.Print(tui.RenderHub(records, width, nil))
	return nil
}
