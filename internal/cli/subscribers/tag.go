package subscribers

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/cmdutil"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add or remove tags on subscribers",
	Long: `Add and/or remove tags on one subscriber or a whole list.

Tags are applied one subscriber at a time, in input order. There is no
rollback: if a request fails mid-run, earlier subscribers keep their
changes.

Examples:
  sendcast subscribers tag --email a@x.com --add vip
  sendcast subscribers tag --file vips.csv --add vip --add beta
  sendcast subscribers tag --file old.csv --remove trial --confirm`,
	RunE: runTag,
}

var (
	tagFlags     cmdutil.BulkFlags
	tagTargets   cmdutil.TargetFlags
	tagsToAdd    []string
	tagsToRemove []string
)

func init() {
	Cmd.AddCommand(tagCmd)
	cmdutil.AddBulkFlags(tagCmd, &tagFlags)
	cmdutil.AddTargetFlags(tagCmd, &tagTargets)

	tagCmd.Flags().StringArrayVar(&tagsToAdd, "add", nil,
		"Tag to add (repeatable)")
	tagCmd.Flags().StringArrayVar(&tagsToRemove, "remove", nil,
		"Tag to remove (repeatable)")
}

// tagResult is the executed-state summary for the tag command.
type tagResult struct {
	Updated int
	Added   []string
	Removed []string
}

func runTag(cmd *cobra.Command, args []string) error {
	p, err := cmdutil.Printer(cmd)
	if err != nil {
		return err
	}
	if len(tagsToAdd) == 0 && len(tagsToRemove) == 0 {
		return cmdutil.Usagef("at least one --add or --remove is required")
	}

	emails, err := cmdutil.ResolveTargets(p, tagTargets)
	if err != nil {
		return err
	}

	client, err := cmdutil.Client(cmd)
	if err != nil {
		return err
	}

	op := safety.Operation[string, *tagResult]{
		Name:  "Tag Subscribers",
		Items: emails,
		FormatItem: func(email string, i int) map[string]string {
			return map[string]string{"#": strconv.Itoa(i + 1), "email": email}
		},
		Preview: func(sample []string) {
			if len(tagsToAdd) > 0 {
				p.Infof("adding: %s", strings.Join(tagsToAdd, ", "))
			}
			if len(tagsToRemove) > 0 {
				p.Infof("removing: %s", strings.Join(tagsToRemove, ", "))
			}
		},
		Execute: func(ctx context.Context, items []string) (*tagResult, error) {
			// One request per subscriber per tag, sequential, in input
			// order. A failure aborts the rest of the run.
			for _, email := range items {
				for _, tag := range tagsToAdd {
					if err := client.AddTag(ctx, email, tag); err != nil {
						return nil, err
					}
				}
				for _, tag := range tagsToRemove {
					if err := client.RemoveTag(ctx, email, tag); err != nil {
						return nil, err
					}
				}
			}
			return &tagResult{Updated: len(items), Added: tagsToAdd, Removed: tagsToRemove}, nil
		},
	}

	outcome, err := safety.Run(cmd.Context(), cmdutil.Guard(p), op, tagFlags.Options())
	if err != nil {
		return err
	}
	if !outcome.Executed() {
		return safety.Finish(p, "tag subscribers", outcome)
	}

	result := outcome.Result
	return p.Envelope(output.OKMeta(map[string]interface{}{
		"updated": result.Updated,
		"added":   result.Added,
		"removed": result.Removed,
	}, output.Meta{Count: result.Updated}))
}
