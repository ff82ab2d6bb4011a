package subscribers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribers",
	Long: `List subscribers, optionally filtered by state.

States: active, pending, unsubscribed, suppressed, bounced, complained.

Examples:
  sendcast subscribers list
  sendcast subscribers list --state unsubscribed --page 2
  sendcast subscribers list --json`,
	Aliases: []string{"ls"},
	RunE:    runList,
}

var (
	listState    string
	listPage     int
	listPageSize int
)

func init() {
	Cmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listState, "state", "", "Filter by subscriber state")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 50, "Results per page")
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	page, err := client.ListSubscribers(cmd.Context(), listState, listPage, listPageSize)
	if err != nil {
		return err
	}

	if p.Pretty() {
		if len(page.Items) == 0 {
			p.Infof("no subscribers found")
		} else {
			t := cliutil.NewTable(p.Out(),
				cliutil.Column{Header: "EMAIL", Width: 32},
				cliutil.Column{Header: "NAME", Width: 20},
				cliutil.Column{Header: "STATE", Width: 14},
				cliutil.Column{Header: "TAGS"},
			)
			t.PrintHeader()
			for _, s := range page.Items {
				t.PrintRow(s.Email, s.Name,
					styles.FormatSubscriberState(s.State),
					strings.Join(s.Tags, ", "))
			}
			p.Println()
			p.Infof("page %d of %d subscriber(s)", page.Page, page.Total)
		}
	}

	return p.Envelope(output.OKMeta(page.Items, output.Meta{
		Count:    len(page.Items),
		Total:    &page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		HasMore:  &page.HasMore,
	}))
}
