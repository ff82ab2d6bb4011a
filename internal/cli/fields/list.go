package fields

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List custom fields",
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

	fields, err := client.ListFields(cmd.Context())
	if err != nil {
		return err
	}

	if p.Pretty() {
		if len(fields) == 0 {
			p.Infof("no custom fields defined")
		} else {
			t := cliutil.NewTable(p.Out(),
				cliutil.Column{Header: "KEY", Width: 20},
				cliutil.Column{Header: "LABEL", Width: 24},
				cliutil.Column{Header: "TYPE"},
			)
			t.PrintHeader()
			for _, f := range fields {
				t.PrintRow(f.Key, f.Label, f.Type)
			}
			p.Println()
		}
	}

	return p.Envelope(output.OKMeta(fields, output.Meta{Count: len(fields)}))
}
