package broadcasts

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one broadcast",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	Cmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	b, err := client.GetBroadcast(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if p.Pretty() {
		p.Println()
		p.Println("  " + styles.HeaderStyle.MarginBottom(0).Render(b.Subject))
		label := func(k, v string) {
			p.Println(styles.LabelStyle.Render("  "+k) + v)
		}
		label("ID", b.ID)
		label("Status", b.Status)
		label("Recipients", strconv.Itoa(b.Recipients))
		if b.SentAt != nil {
			label("Sent", cliutil.FormatRelativeTime(*b.SentAt))
		}
		if b.ScheduledAt != nil {
			label("Scheduled", b.ScheduledAt.Format("Jan 2, 2006 15:04"))
		}
		p.Println()
	}

	return p.Envelope(output.OK(b))
}
