package fields

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a custom field",
	Long: `Delete a field definition and its values on every subscriber.

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
	key := args[0]

	ok, err := cmdutil.ConfirmAction(p,
		fmt.Sprintf("Delete field %q and its values on every subscriber?", key),
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
	if err := client.DeleteField(cmd.Context(), key); err != nil {
		return err
	}

	p.Successf("deleted field %q", key)
	return p.Envelope(output.OK(map[string]interface{}{"deleted": key}))
}
