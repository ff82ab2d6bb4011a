// Package safety is the bulk-operation safety engine. Every destructive
// or multi-record command goes through Guard.Run, which is the sole
// authority on whether an operation's Execute function is ever invoked.
package safety

import "context"

// Operation describes one named bulk mutation.
type Operation[T, R any] struct {
	// Name is the human-readable label used in prompts and reports,
	// e.g. "Import Subscribers".
	Name string

	// Items is the full candidate set, pre-limit, in input order.
	Items []T

	// Execute performs the side-effecting action. Invoked at most once,
	// only with the item subset that survived limiting and gating.
	Execute func(ctx context.Context, items []T) (R, error)

	// FormatItem projects an item to a flat record for preview display.
	// Optional; defaults to {#, value}.
	FormatItem func(item T, index int) map[string]string

	// Preview is an optional side-effect-free hook invoked with the
	// sampled items during preview rendering.
	Preview func(sample []T)

	// Dangerous operations always require confirmation regardless of
	// item count.
	Dangerous bool
}

// Options are per-invocation safety knobs normalized from CLI flags.
type Options struct {
	// DryRun skips execution entirely after the preview.
	DryRun bool
	// Limit caps the item set to the first N items. Zero means no limit.
	Limit int
	// Sample caps preview display size, independent of Limit. Zero or
	// negative falls back to the configured default.
	Sample int
	// Confirm bypasses the interactive confirmation prompt.
	Confirm bool
}

// State is the terminal state of one Guard.Run invocation.
type State int

const (
	StateNoop State = iota
	StateDryRun
	StateRefused
	StateCancelled
	StateExecuted
)

func (s State) String() string {
	switch s {
	case StateNoop:
		return "noop"
	case StateDryRun:
		return "dry-run"
	case StateRefused:
		return "refused"
	case StateCancelled:
		return "cancelled"
	case StateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// Outcome reports how a run terminated. Result is only meaningful when
// State is StateExecuted.
type Outcome[R any] struct {
	State   State
	Count   int                 // items that were (or would be) affected
	Preview []map[string]string // rows shown during preview
	Result  R
}

// Executed reports whether Execute ran to completion.
func (o *Outcome[R]) Executed() bool {
	return o.State == StateExecuted
}
