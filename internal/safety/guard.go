package safety

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sendcast/sendcast-cli/internal/output"
)

// RefusalMessage is the fixed remediation hint for non-interactive runs.
const RefusalMessage = "cannot run without confirmation in non-interactive mode. Re-run with --confirm or set SENDCAST_YES=1"

// ErrRefused marks a bulk operation refused by the safety gate. It is a
// policy outcome, not a backend failure; the command layer maps it to a
// non-zero exit after the refusal has already been reported.
var ErrRefused = errors.New(RefusalMessage)

// Config is process-wide safety tuning.
type Config struct {
	// ConfirmThreshold is the item count at/above which non-dangerous
	// operations require confirmation.
	ConfirmThreshold int
	// DefaultSampleSize is the preview row count when --sample is unset.
	DefaultSampleSize int
}

// PromptFunc asks the user a yes/no question. Injected so the engine is
// testable with a deterministic stub.
type PromptFunc func(message string) (bool, error)

// Guard gates bulk operations: limit, preview, confirm, execute.
type Guard struct {
	cfg         Config
	p           *output.Printer
	prompt      PromptFunc
	interactive bool
	autoConfirm bool
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithPrompt swaps the confirmation prompt implementation.
func WithPrompt(fn PromptFunc) GuardOption {
	return func(g *Guard) { g.prompt = fn }
}

// WithInteractive overrides terminal detection.
func WithInteractive(interactive bool) GuardOption {
	return func(g *Guard) { g.interactive = interactive }
}

// WithAutoConfirm sets the environment-level confirmation override.
func WithAutoConfirm(auto bool) GuardOption {
	return func(g *Guard) { g.autoConfirm = auto }
}

// NewGuard creates a guard. By default interactivity is probed from the
// controlling terminal and prompting reads stdin.
func NewGuard(p *output.Printer, cfg Config, opts ...GuardOption) *Guard {
	g := &Guard{
		cfg:         cfg,
		p:           p,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}
	g.prompt = g.stdinPrompt
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// stdinPrompt asks on the terminal with a default answer of no.
func (g *Guard) stdinPrompt(message string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// Run drives the full bulk-operation lifecycle. Execute is called zero
// or one times; an error from Execute propagates unmodified.
func Run[T, R any](ctx context.Context, g *Guard, op Operation[T, R], opts Options) (*Outcome[R], error) {
	items := op.Items

	// 1. Empty set: nothing to do, never an error.
	if len(items) == 0 {
		g.p.Warnf("%s: no matching records — nothing to do", op.Name)
		return &Outcome[R]{State: StateNoop}, nil
	}

	// 2. Limit truncates from the front, order preserved.
	if opts.Limit > 0 && opts.Limit < len(items) {
		g.p.Infof("limiting to first %d of %d item(s)", opts.Limit, len(items))
		items = items[:opts.Limit]
	}

	// 3. Preview (human mode only).
	sampleSize := ResolveSampleSize(opts.Sample, g.cfg.DefaultSampleSize, len(items))
	rows := previewRows(items, sampleSize, op.FormatItem)
	g.renderPreview(op.Name, rows, len(items), op.Dangerous)
	if op.Preview != nil {
		op.Preview(items[:sampleSize])
	}

	// 4. Dry run stops here.
	if opts.DryRun {
		g.p.Infof("dry run — %d item(s) would be affected, no changes made", len(items))
		return &Outcome[R]{State: StateDryRun, Count: len(items), Preview: rows}, nil
	}

	// 5. Confirmation gate.
	if !opts.Confirm && !g.autoConfirm {
		if !g.interactive {
			g.p.Warnf("%s", RefusalMessage)
			return &Outcome[R]{State: StateRefused, Count: len(items), Preview: rows}, nil
		}
		if op.Dangerous || len(items) >= g.cfg.ConfirmThreshold {
			ok, err := g.prompt(fmt.Sprintf("Proceed with %s on %d item(s)?", op.Name, len(items)))
			if err != nil {
				return nil, err
			}
			if !ok {
				g.p.Infof("cancelled — no changes made")
				return &Outcome[R]{State: StateCancelled, Count: len(items), Preview: rows}, nil
			}
		}
	}

	// 6. Execute exactly once.
	spin := output.NewSpinner(g.p, op.Name+"...")
	spin.Start()
	result, err := op.Execute(ctx, items)
	if err != nil {
		spin.Fail(op.Name + " failed")
		return nil, err
	}
	spin.Success(fmt.Sprintf("%s complete (%d item(s))", op.Name, len(items)))

	return &Outcome[R]{State: StateExecuted, Count: len(items), Preview: rows, Result: result}, nil
}

// Confirm is the simple sibling of Run for single irreversible actions
// (no item list, preview, or limit). Same interactive and auto-confirm
// short-circuits; a declined prompt returns false with no error.
func (g *Guard) Confirm(message string, confirm bool) (bool, error) {
	if confirm || g.autoConfirm {
		return true, nil
	}
	if !g.interactive {
		g.p.Warnf("%s", RefusalMessage)
		return false, ErrRefused
	}
	ok, err := g.prompt(message)
	if err != nil {
		return false, err
	}
	if !ok {
		g.p.Infof("cancelled — no changes made")
	}
	return ok, nil
}

// Finish emits the JSON envelope for a non-executed outcome. It returns
// ErrRefused for safety refusals so the command layer exits non-zero;
// every other non-executed state is a valid user choice, not a failure.
func Finish[R any](p *output.Printer, action string, o *Outcome[R]) error {
	switch o.State {
	case StateNoop:
		return p.Envelope(output.OK(map[string]interface{}{"wouldAffect": 0}))
	case StateDryRun:
		return p.Envelope(output.OK(map[string]interface{}{
			"dryRun":      true,
			"action":      action,
			"wouldAffect": o.Count,
			"preview":     o.Preview,
		}))
	case StateCancelled:
		return p.Envelope(output.OK(map[string]interface{}{"cancelled": true}))
	case StateRefused:
		if p.JSON() {
			p.ErrorEnvelope(output.FailCode(RefusalMessage, "confirm_required"))
		}
		return ErrRefused
	}
	return nil
}
