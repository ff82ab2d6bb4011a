package cli

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cli/broadcasts"
	"github.com/sendcast/sendcast-cli/internal/cli/fields"
	"github.com/sendcast/sendcast-cli/internal/cli/subscribers"
	"github.com/sendcast/sendcast-cli/internal/cli/tags"
	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sendcast",
	Short: "Sendcast CLI - manage your email list from the terminal",
	Long: `sendcast is a command-line client for the Sendcast email-marketing API.

It manages subscribers, tags, custom fields, events, and broadcasts,
with safety guardrails around every bulk mutation: previews, item
limits, dry runs, and confirmation prompts.

Examples:
  sendcast login
  sendcast subscribers import contacts.csv --dry-run
  sendcast subscribers tag --file vips.csv --add vip
  sendcast stats watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := cliutil.Mode(cmd); err != nil {
			return cmdutil.Usagef("%v", err)
		}
		return config.Init(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/sendcast/config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false,
		"Emit a single JSON envelope instead of human output")
	rootCmd.PersistentFlags().Bool("quiet", false,
		"Suppress all non-error output")
	rootCmd.PersistentFlags().String("profile", "",
		"Credential profile to use (default is the current profile)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	})

	rootCmd.AddCommand(subscribers.Cmd)
	rootCmd.AddCommand(tags.Cmd)
	rootCmd.AddCommand(fields.Cmd)
	rootCmd.AddCommand(broadcasts.Cmd)
}

// Execute runs the root command and reports any terminal error in the
// selected output mode. The caller maps the returned error to an exit
// code via cmdutil.CodeFor.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !cmdutil.Silent(err) {
		reportError(err)
	}
	return err
}

// reportError prints the single user-visible error line (or JSON
// envelope on stderr).
func reportError(err error) {
	mode := output.ModePretty
	if jsonFlag, _ := rootCmd.PersistentFlags().GetBool("json"); jsonFlag {
		if quietFlag, _ := rootCmd.PersistentFlags().GetBool("quiet"); !quietFlag {
			mode = output.ModeJSON
		}
	}
	output.NewPrinter(mode).ErrorEnvelope(output.Fail(err.Error()))
}
