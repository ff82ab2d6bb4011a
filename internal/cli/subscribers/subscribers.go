// Package subscribers implements the subscriber resource commands.
// Every multi-record mutation goes through the safety engine; the
// command handlers only build the operation descriptor.
package subscribers

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent `sendcast subscribers` command.
var Cmd = &cobra.Command{
	Use:     "subscribers",
	Short:   "Manage list subscribers",
	Aliases: []string{"subs", "sub"},
}
