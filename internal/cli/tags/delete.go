package tags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag",
	Long: `Delete a tag and detach it from every subscriber.

This cannot be undone, so it always asks for confirmation.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteConfirm bool

func init() {
	Cmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteConfirm, "confirm", false,
		"Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	name := args[0]

	ok, err := cmdutil.ConfirmAction(p,
		fmt.Sprintf("Delete tag %q and detach it from every subscriber?", name),
		deleteConfirm)
	if err != nil {
		return err
	}
	if !ok {
		return p.Envelope(output.OK(map[string]interface{}{"cancelled": true}))
	}

	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}
	if err := client.DeleteTag(cmd.Context(), name); err != nil {
		return err
	}

	p.Successf("deleted tag %q", name)
	return p.Envelope(output.OK(map[string]interface{}{"deleted": name}))
}
