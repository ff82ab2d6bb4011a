package broadcasts

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List broadcasts, newest first",
	Aliases: []string{"ls"},
	RunE:    runList,
}

var (
	listPage     int
	listPageSize int
)

func init() {
	Cmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "Results per page")
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

	page, err := client.ListBroadcasts(cmd.Context(), listPage, listPageSize)
	if err != nil {
		return err
	}

	if p.Pretty() {
		if len(page.Items) == 0 {
			p.Infof("no broadcasts yet")
		} else {
			t := cliutil.NewTable(p.Out(),
				cliutil.Column{Header: "ID", Width: 14},
				cliutil.Column{Header: "SUBJECT", Width: 36},
				cliutil.Column{Header: "STATUS", Width: 10},
				cliutil.Column{Header: "RECIPIENTS"},
			)
			t.PrintHeader()
			for _, b := range page.Items {
				t.PrintRow(b.ID, b.Subject, b.Status, strconv.Itoa(b.Recipients))
			}
			p.Println()
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
