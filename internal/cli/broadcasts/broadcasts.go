// Package broadcasts implements the read-only broadcast subcommands.
package broadcasts

import "github.com/spf13/cobra"

// Cmd is the parent command for broadcast operations.
var Cmd = &cobra.Command{
	Use:     "broadcasts",
	Short:   "Inspect broadcasts",
	Long:    "List broadcasts and inspect per-broadcast engagement stats.",
	Aliases: []string{"bc"},
}
