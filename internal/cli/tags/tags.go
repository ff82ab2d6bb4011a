// Package tags implements the tag management subcommands.
package tags

import "github.com/spf13/cobra"

// Cmd is the parent command for tag operations.
var Cmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags",
	Long:  "List, create, and delete the account's tags.",
}
