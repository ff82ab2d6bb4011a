package subscribers

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
)

var suppressCmd = &cobra.Command{
	Use:   "suppress",
	Short: "Add subscribers to the suppression list",
	Long: `Suppress one subscriber or a whole list.

Suppressed addresses are never mailed again, regardless of subscription
state or future imports. Suppression cannot be undone from the CLI, so
this always asks for confirmation.

Examples:
  sendcast subscribers suppress --email spamtrap@x.com
  sendcast subscribers suppress --file complaints.csv --confirm`,
	RunE: runSuppress,
}

var (
	suppressFlags   cmdutil.BulkFlags
	suppressTargets cmdutil.TargetFlags
)

func init() {
	Cmd.AddCommand(suppressCmd)
	cmdutil.AddBulkFlags(suppressCmd, &suppressFlags)
	cmdutil.AddTargetFlags(suppressCmd, &suppressTargets)
}

func runSuppress(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	emails, err := cmdutil.ResolveTargets(p, suppressTargets)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	op := safety.Operation[string, int]{
		Name:      "Suppress Subscribers",
		Items:     emails,
		Dangerous: true,
		FormatItem: func(email string, i int) map[string]string {
			return map[string]string{"#": strconv.Itoa(i + 1), "email": email}
		},
		Execute: func(ctx context.Context, items []string) (int, error) {
			for _, email := range items {
				if err := client.Suppress(ctx, email); err != nil {
					return 0, err
				}
			}
			return len(items), nil
		},
	}

	outcome, err := safety.Run(cmd.Context(), cmdutil.Guard(p), op, suppressFlags.Options())
	if err != nil {
		return err
	}
	if !outcome.Executed() {
		return safety.Finish(p, "suppress subscribers", outcome)
	}

	return p.Envelope(output.OKMeta(map[string]interface{}{
		"suppressed": outcome.Result,
	}, output.Meta{Count: outcome.Result}))
}
