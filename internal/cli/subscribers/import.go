package subscribers

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/api"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
	"github.com/sendcast/sendcast-cli/internal/targets"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-import subscribers from a CSV file",
	Long: `Import subscribers from a CSV file.

The file must have an "email" column. Optional columns: "name", "tags",
"remove_tags" (comma-separated inside the cell), and "field:<key>" for
custom fields.

The whole batch is submitted to the bulk import endpoint in one call.

Examples:
  sendcast subscribers import contacts.csv --dry-run
  sendcast subscribers import contacts.csv --limit 100
  sendcast subscribers import contacts.csv --confirm --json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFlags cmdutil.BulkFlags

func init() {
	Cmd.AddCommand(importCmd)
	cmdutil.AddBulkFlags(importCmd, &importFlags)
}

func formatImportRecord(r api.ImportRecord, i int) map[string]string {
	row := map[string]string{
		"#":     strconv.Itoa(i + 1),
		"email": r.Email,
	}
	if r.Name != "" {
		row["name"] = r.Name
	}
	if len(r.Tags) > 0 {
		row["tags"] = strings.Join(r.Tags, ", ")
	}
	if len(r.RemoveTags) > 0 {
		row["remove_tags"] = strings.Join(r.RemoveTags, ", ")
	}
	return row
}

func runImport(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	path := args[0]

	records, rowErrs, err := targets.ParseSubscriberCSV(path)
	if err != nil {
		return err
	}
	if len(rowErrs) > 0 {
		return cmdutil.ReportRowErrors(p, path, rowErrs)
	}

	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	op := safety.Operation[api.ImportRecord, *api.ImportResult]{
		Name:       "Import Subscribers",
		Items:      records,
		FormatItem: formatImportRecord,
		Execute: func(ctx context.Context, items []api.ImportRecord) (*api.ImportResult, error) {
			return client.ImportSubscribers(ctx, items)
		},
	}

	outcome, err := safety.Run(cmd.Context(), cmdutil.Guard(p), op, importFlags.Options())
	if err != nil {
		return err
	}
	if !outcome.Executed() {
		return safety.Finish(p, "import subscribers", outcome)
	}

	result := outcome.Result
	p.Infof("imported %d, updated %d, skipped %d (batch %s)",
		result.Imported, result.Updated, result.Skipped, result.BatchID)
	return p.Envelope(output.OKMeta(map[string]interface{}{
		"imported": result.Imported,
		"updated":  result.Updated,
		"skipped":  result.Skipped,
		"batchId":  result.BatchID,
	}, output.Meta{Count: outcome.Count}))
}
