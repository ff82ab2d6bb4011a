package subscribers

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Subscribe email addresses",
	Long: `Subscribe one email address or a whole list.

Addresses already on the list are reactivated; suppressed addresses are
left untouched by the server.

Examples:
  sendcast subscribers subscribe --email a@x.com
  sendcast subscribers subscribe --file signups.csv`,
	RunE: runSubscribe,
}

var (
	subscribeFlags   cmdutil.BulkFlags
	subscribeTargets cmdutil.TargetFlags
)

func init() {
	Cmd.AddCommand(subscribeCmd)
	cmdutil.AddBulkFlags(subscribeCmd, &subscribeFlags)
	cmdutil.AddTargetFlags(subscribeCmd, &subscribeTargets)
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	emails, err := cmdutil.ResolveTargets(p, subscribeTargets)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	op := safety.Operation[string, int]{
		Name:  "Subscribe Emails",
		Items: emails,
		FormatItem: func(email string, i int) map[string]string {
			return map[string]string{"#": strconv.Itoa(i + 1), "email": email}
		},
		Execute: func(ctx context.Context, items []string) (int, error) {
			for _, email := range items {
				if _, err := client.Subscribe(ctx, email); err != nil {
					return 0, err
				}
			}
			return len(items), nil
		},
	}

	outcome, err := safety.Run(cmd.Context(), cmdutil.Guard(p), op, subscribeFlags.Options())
	if err != nil {
		return err
	}
	if !outcome.Executed() {
		return safety.Finish(p, "subscribe emails", outcome)
	}

	return p.Envelope(output.OKMeta(map[string]interface{}{
		"subscribed": outcome.Result,
	}, output.Meta{Count: outcome.Result}))
}
