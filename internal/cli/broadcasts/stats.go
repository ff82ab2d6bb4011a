package broadcasts

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

var statsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show engagement stats for one broadcast",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	Cmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	stats, err := client.GetBroadcastStats(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if p.Pretty() {
		p.Println()
		label := func(k, v string) {
			p.Println(styles.LabelStyle.Render("  "+k) + v)
		}
		label("Delivered", fmt.Sprintf("%d", stats.Delivered))
		label("Opens", fmt.Sprintf("%d (%.1f%%)", stats.Opens, stats.OpenRate*100))
		label("Clicks", fmt.Sprintf("%d (%.1f%%)", stats.Clicks, stats.ClickRate*100))
		label("Unsubscribes", fmt.Sprintf("%d", stats.Unsubscribes))
		label("Bounces", fmt.Sprintf("%d", stats.Bounces))
		p.Println()
	}

	return p.Envelope(output.OK(stats))
}
