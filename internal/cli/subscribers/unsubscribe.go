package subscribers

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
)

var unsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe",
	Short: "Unsubscribe subscribers",
	Long: `Unsubscribe one subscriber or a whole list.

Unsubscribed addresses stay on the list but receive no further mail
until they opt in again. This always asks for confirmation.

Examples:
  sendcast subscribers unsubscribe --email a@x.com
  sendcast subscribers unsubscribe --file churned.csv --confirm`,
	Aliases: []string{"unsub"},
	RunE:    runUnsubscribe,
}

var (
	unsubscribeFlags   cmdutil.BulkFlags
	unsubscribeTargets cmdutil.TargetFlags
)

func init() {
	Cmd.AddCommand(unsubscribeCmd)
	cmdutil.AddBulkFlags(unsubscribeCmd, &unsubscribeFlags)
	cmdutil.AddTargetFlags(unsubscribeCmd, &unsubscribeTargets)
}

func runUnsubscribe(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	emails, err := cmdutil.ResolveTargets(p, unsubscribeTargets)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	op := safety.Operation[string, int]{
		Name:      "Unsubscribe Subscribers",
		Items:     emails,
		Dangerous: true,
		FormatItem: func(email string, i int) map[string]string {
			return map[string]string{"#": strconv.Itoa(i + 1), "email": email}
		},
		Execute: func(ctx context.Context, items []string) (int, error) {
			for _, email := range items {
				if err := client.Unsubscribe(ctx, email); err != nil {
					return 0, err
				}
			}
			return len(items), nil
		},
	}

	outcome, err := safety.Run(cmd.Context(), cmdutil.Guard(p), op, unsubscribeFlags.Options())
	if err != nil {
		return err
	}
	if !outcome.Executed() {
		return safety.Finish(p, "unsubscribe subscribers", outcome)
	}

	return p.Envelope(output.OKMeta(map[string]interface{}{
		"unsubscribed": outcome.Result,
	}, output.Meta{Count: outcome.Result}))
}
