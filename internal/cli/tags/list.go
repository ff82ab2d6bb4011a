package tags

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tags",
	Aliases: []string{"ls"},
	RunE:    runList,
}

func init() {
	Cmd.AddCommand(listCmd)
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

	tags, err := client.ListTags(cmd.Context())
	if err != nil {
		return err
	}

	if p.Pretty() {
		if len(tags) == 0 {
			p.Infof("no tags yet")
		} else {
			t := cliutil.NewTable(p.Out(),
				cliutil.Column{Header: "NAME", Width: 24},
				cliutil.Column{Header: "SUBSCRIBERS", Width: 12},
				cliutil.Column{Header: "CREATED"},
			)
			t.PrintHeader()
			for _, tag := range tags {
				t.PrintRow(tag.Name, strconv.Itoa(tag.Count),
					cliutil.FormatRelativeTime(tag.CreatedAt))
			}
			p.Println()
		}
	}

	return p.Envelope(output.OKMeta(tags, output.Meta{Count: len(tags)}))
}
