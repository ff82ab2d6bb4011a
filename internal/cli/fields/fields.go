// Package fields implements the custom field subcommands.
package fields

import "github.com/spf13/cobra"

// Cmd is the parent command for custom field operations.
var Cmd = &cobra.Command{
	Use:   "fields",
	Short: "Manage custom fields",
	Long:  "List, create, and delete custom subscriber field definitions.",
}
