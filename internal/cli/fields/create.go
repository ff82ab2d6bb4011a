package fields

import (
	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
)

var createCmd = &cobra.Command{
	Use:   "create <key>",
	Short: "Create a custom field",
	Long: `Define a new custom subscriber field.

The key is how the field appears in CSV headers ("field:<key>") and in
API payloads. Types: text, number, date.

Examples:
  sendcast fields create company --label "Company"
  sendcast fields create signup_date --label "Signed up" --type date`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var (
	createLabel string
	createType  string
)

func init() {
	Cmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createLabel, "label", "", "Display label (defaults to the key)")
	createCmd.Flags().StringVar(&createType, "type", "text", "Field type: text, number, or date")
}

func runCreate(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	key := args[0]
	label := createLabel
	if label == "" {
		label = key
	}
	switch createType {
	case "text", "number", "date":
	default:
		return cmdutil.Usagef("unknown field type %q (want text, number, or date)", createType)
	}

	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	field, err := client.CreateField(cmd.Context(), key, label, createType)
	if err != nil {
		return err
	}

	p.Successf("created field %q (%s)", field.Key, field.Type)
	return p.Envelope(output.OK(field))
}
