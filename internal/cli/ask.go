package cli

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask about your list in plain language",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	p.Warnf("ask is not available in this build")
	return p.Envelope(output.OK(map[string]interface{}{"available": false}))
}
