package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the firmware can run in.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	maxLen := 4 // "Name" header
	for _, f := range frontends {
		if len(f.Name) > maxLen {
			maxLen = len(f.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----------")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, f.Name, f.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pixelsnake run --frontend <name>' to use one.")
}
