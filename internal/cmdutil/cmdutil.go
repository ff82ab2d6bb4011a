// Package cmdutil holds the shared plumbing between command handlers
// and the safety engine: printers, clients, guards, and the bulk and
// target flag sets every multi-record command accepts.
package cmdutil

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sendcast/sendcast-cli/internal/api"
	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/config"
	"github.com/sendcast/sendcast-cli/internal/output"
	"github.com/sendcast/sendcast-cli/internal/safety"
	"github.com/sendcast/sendcast-cli/internal/targets"
)

// Printer builds the invocation's printer from the global output flags.
func Printer(cmd *cobra.Command) (*output.Printer, error) {
	mode, err := cliutil.Mode(cmd)
	if err != nil {
		return nil, Usagef("%v", err)
	}
	return output.NewPrinter(mode), nil
}

// Client builds an API client honoring the global --profile flag.
func Client(cmd *cobra.Command) (*api.Client, error) {
	profile, _ := cmd.Flags().GetString("profile")
	return config.NewClient(profile)
}

// Guard builds the safety engine for one invocation from process-wide
// config and the auto-confirm environment signal.
func Guard(p *output.Printer) *safety.Guard {
	return safety.NewGuard(p,
		safety.Config{
			ConfirmThreshold:  config.ConfirmThreshold(),
			DefaultSampleSize: config.SampleSize(),
		},
		safety.WithAutoConfirm(config.AutoConfirm()),
	)
}

// ConfirmAction runs the single-action confirmation gate and reports a
// machine-readable refusal envelope when running in JSON mode.
func ConfirmAction(p *output.Printer, message string, confirm bool) (bool, error) {
	ok, err := Guard(p).Confirm(message, confirm)
	if err != nil {
		if errors.Is(err, safety.ErrRefused) && p.JSON() {
			p.ErrorEnvelope(output.FailCode(safety.RefusalMessage, "confirm_required"))
		}
		return false, err
	}
	return ok, nil
}

// BulkFlags are the safety knobs every bulk-affecting command accepts.
type BulkFlags struct {
	DryRun  bool
	Limit   int
	Sample  int
	Confirm bool
}

// AddBulkFlags registers --dry-run/--limit/--sample/--confirm on cmd.
func AddBulkFlags(cmd *cobra.Command, f *BulkFlags) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Preview without making any changes")
	cmd.Flags().IntVar(&f.Limit, "limit", 0,
		"Only affect the first N items")
	cmd.Flags().IntVar(&f.Sample, "sample", 0,
		"Preview row count (default from config)")
	cmd.Flags().BoolVar(&f.Confirm, "confirm", false,
		"Skip the confirmation prompt")
}

// Options converts the flags to engine options.
func (f *BulkFlags) Options() safety.Options {
	return safety.Options{
		DryRun:  f.DryRun,
		Limit:   f.Limit,
		Sample:  f.Sample,
		Confirm: f.Confirm,
	}
}

// TargetFlags select the operation targets: one email or a file.
type TargetFlags struct {
	Email string
	File  string
}

// AddTargetFlags registers --email/--file on cmd.
func AddTargetFlags(cmd *cobra.Command, f *TargetFlags) {
	cmd.Flags().StringVar(&f.Email, "email", "",
		"Target a single subscriber by email")
	cmd.Flags().StringVar(&f.File, "file", "",
		"Target every email in a CSV or plain list file")
}

// maxRowErrors caps how many row errors are shown before summarizing.
const maxRowErrors = 10

// ReportRowErrors prints file validation failures, capped with a
// "+N more" summary, and returns the validation exit error.
func ReportRowErrors(p *output.Printer, path string, errs []targets.RowError) error {
	if p.JSON() {
		p.ErrorEnvelope(output.FailCode(
			fmt.Sprintf("%s has %d validation error(s), nothing was processed", path, len(errs)),
			"validation_error"))
		return ExitSilent(ExitValidation)
	}

	shown := errs
	if len(shown) > maxRowErrors {
		shown = shown[:maxRowErrors]
	}
	for _, e := range shown {
		p.Errorf("%s: %s", path, e.String())
	}
	if extra := len(errs) - len(shown); extra > 0 {
		p.Errorf("%s: +%d more validation error(s)", path, extra)
	}
	return ExitSilent(ExitValidation)
}

// ResolveTargets resolves --email/--file into a validated email list.
// Neither flag set is a usage error; row errors are fatal for the
// whole invocation.
func ResolveTargets(p *output.Printer, f TargetFlags) ([]string, error) {
	resolved, err := targets.Resolve(f.Email, f.File)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, Usagef("either --email or --file is required")
	}
	if len(resolved.Errors) > 0 {
		return nil, ReportRowErrors(p, f.File, resolved.Errors)
	}
	return resolved.Emails, nil
}
