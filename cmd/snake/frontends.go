package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available front ends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		infos := registry.List()
		if len(infos) == 0 {
			fmt.Fprintln(out, "No front ends registered.")
			return
		}

		fmt.Fprintln(out, "Available front ends:")
		fmt.Fprintln(out)
		for _, info := range infos {
			fmt.Fprintf(out, "  %-8s %s\n", info.ID, info.Title)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use 'snake play --frontend <id>' to pick one.")
	},
}
