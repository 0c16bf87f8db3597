package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-checkers/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List available rule variants",
	Long:  `Shows every rule variant that can be passed to --variant.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	t := newListTable("Variant", "Rules")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}
	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, "Play one with 'checkers --variant <id>'.")
}
