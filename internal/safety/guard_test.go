package safety

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendcast/sendcast-cli/internal/output"
)

type harness struct {
	guard    *Guard
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	prompts  []string
	answer   bool
	executed [][]string
}

func newHarness(t *testing.T, mode output.Mode, opts ...GuardOption) *harness {
	t.Helper()
	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, answer: true}
	p := output.NewPrinterTo(mode, h.out, h.errOut)

	base := []GuardOption{
		WithInteractive(true),
		WithAutoConfirm(false),
		WithPrompt(func(message string) (bool, error) {
			h.prompts = append(h.prompts, message)
			return h.answer, nil
		}),
	}
	h.guard = NewGuard(p, Config{ConfirmThreshold: 10, DefaultSampleSize: 5}, append(base, opts...)...)
	return h
}

func (h *harness) operation(name string, items []string, dangerous bool) Operation[string, int] {
	return Operation[string, int]{
		Name:      name,
		Items:     items,
		Dangerous: dangerous,
		Execute: func(ctx context.Context, batch []string) (int, error) {
			h.executed = append(h.executed, batch)
			return len(batch), nil
		},
	}
}

func emails(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("user%d@example.com", i)
	}
	return items
}

// Empty item lists are a no-op, never an error, and never execute.
func TestEmptyItemsNeverExecutes(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	outcome, err := Run(context.Background(), h.guard, h.operation("Tag Subscribers", nil, false), Options{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, StateNoop, outcome.State)
	assert.Empty(t, h.executed)
}

// Limit passes exactly the first k items, in original order.
func TestLimitIsPrefix(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	items := emails(8)

	outcome, err := Run(context.Background(), h.guard, h.operation("Tag Subscribers", items, false), Options{Limit: 3, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, StateExecuted, outcome.State)
	require.Len(t, h.executed, 1)
	assert.Equal(t, items[:3], h.executed[0])
}

func TestLimitLargerThanSetIsIgnored(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	items := emails(3)

	outcome, err := Run(context.Background(), h.guard, h.operation("Tag Subscribers", items, false), Options{Limit: 50, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Count)
	assert.Equal(t, items, h.executed[0])
}

// Dry run never executes, for any combination of flags.
func TestDryRunNeverExecutes(t *testing.T) {
	for _, dangerous := range []bool{false, true} {
		for _, confirm := range []bool{false, true} {
			name := fmt.Sprintf("dangerous=%t confirm=%t", dangerous, confirm)
			t.Run(name, func(t *testing.T) {
				h := newHarness(t, output.ModePretty)
				outcome, err := Run(context.Background(), h.guard,
					h.operation("Suppress Subscribers", emails(20), dangerous),
					Options{DryRun: true, Confirm: confirm})
				require.NoError(t, err)
				assert.Equal(t, StateDryRun, outcome.State)
				assert.Equal(t, 20, outcome.Count)
				assert.Empty(t, h.executed)
				assert.Empty(t, h.prompts)
			})
		}
	}
}

// --confirm bypasses prompting and executes exactly once.
func TestConfirmBypassesPrompt(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Unsubscribe Subscribers", emails(50), true), Options{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, StateExecuted, outcome.State)
	assert.Empty(t, h.prompts)
	assert.Len(t, h.executed, 1)
}

// The auto-confirm environment signal behaves exactly like --confirm.
func TestAutoConfirmBypassesPrompt(t *testing.T) {
	h := newHarness(t, output.ModePretty, WithAutoConfirm(true))
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Unsubscribe Subscribers", emails(50), true), Options{})
	require.NoError(t, err)
	assert.Equal(t, StateExecuted, outcome.State)
	assert.Empty(t, h.prompts)
	assert.Len(t, h.executed, 1)
}

// Non-interactive without confirm refuses, and never silently succeeds.
func TestNonInteractiveRefusal(t *testing.T) {
	h := newHarness(t, output.ModePretty, WithInteractive(false))
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Import Subscribers", emails(2), false), Options{})
	require.NoError(t, err)
	assert.Equal(t, StateRefused, outcome.State)
	assert.Empty(t, h.executed)
	assert.Empty(t, h.prompts)
	assert.Contains(t, h.out.String(), "non-interactive")
}

// Non-interactive with confirm proceeds without prompting.
func TestNonInteractiveWithConfirmProceeds(t *testing.T) {
	h := newHarness(t, output.ModePretty, WithInteractive(false))
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Import Subscribers", emails(2), false), Options{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, StateExecuted, outcome.State)
}

// Non-dangerous operations at/above the threshold prompt exactly once.
func TestThresholdPrompting(t *testing.T) {
	t.Run("at threshold prompts", func(t *testing.T) {
		h := newHarness(t, output.ModePretty)
		_, err := Run(context.Background(), h.guard,
			h.operation("Tag Subscribers", emails(10), false), Options{})
		require.NoError(t, err)
		require.Len(t, h.prompts, 1)
		assert.Contains(t, h.prompts[0], "Tag Subscribers")
		assert.Contains(t, h.prompts[0], "10")
		assert.Len(t, h.executed, 1)
	})

	t.Run("below threshold proceeds silently", func(t *testing.T) {
		h := newHarness(t, output.ModePretty)
		_, err := Run(context.Background(), h.guard,
			h.operation("Tag Subscribers", emails(9), false), Options{})
		require.NoError(t, err)
		assert.Empty(t, h.prompts)
		assert.Len(t, h.executed, 1)
	})
}

// Dangerous operations prompt regardless of item count.
func TestDangerousAlwaysPrompts(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	_, err := Run(context.Background(), h.guard,
		h.operation("Suppress Subscribers", emails(1), true), Options{})
	require.NoError(t, err)
	assert.Len(t, h.prompts, 1)
}

// A declined prompt cancels cleanly: no execution, not an error.
func TestDeclineCancels(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	h.answer = false
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Unsubscribe Subscribers", emails(12), true), Options{})
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, outcome.State)
	assert.Empty(t, h.executed)
}

// Sample size only bounds the preview, never the executed set.
func TestSampleIndependentOfLimit(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	outcome, err := Run(context.Background(), h.guard,
		h.operation("Tag Subscribers", emails(10), false), Options{Sample: 2, Confirm: true})
	require.NoError(t, err)
	assert.Len(t, outcome.Preview, 2)
	assert.Len(t, h.executed[0], 10)
}

// Execution errors propagate unmodified; the outcome is nil.
func TestExecuteErrorPropagates(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	boom := errors.New("rate limited")
	op := Operation[string, int]{
		Name:  "Import Subscribers",
		Items: emails(3),
		Execute: func(ctx context.Context, items []string) (int, error) {
			return 0, boom
		},
	}
	outcome, err := Run(context.Background(), h.guard, op, Options{Confirm: true})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, outcome)
}

// The preview hook receives the sampled items and cannot affect execution.
func TestPreviewHookReceivesSample(t *testing.T) {
	h := newHarness(t, output.ModePretty)
	var sample []string
	op := h.operation("Import Subscribers", emails(10), false)
	op.Preview = func(items []string) { sample = items }

	_, err := Run(context.Background(), h.guard, op, Options{Sample: 3, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, emails(10)[:3], sample)
}

func TestConfirmActionShortCircuits(t *testing.T) {
	t.Run("confirm flag proceeds without prompt", func(t *testing.T) {
		h := newHarness(t, output.ModePretty)
		ok, err := h.guard.Confirm("Delete tag 'vip'?", true)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, h.prompts)
	})

	t.Run("auto-confirm proceeds without prompt", func(t *testing.T) {
		h := newHarness(t, output.ModePretty, WithAutoConfirm(true))
		ok, err := h.guard.Confirm("Delete tag 'vip'?", false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, h.prompts)
	})

	t.Run("non-interactive refuses", func(t *testing.T) {
		h := newHarness(t, output.ModePretty, WithInteractive(false))
		ok, err := h.guard.Confirm("Delete tag 'vip'?", false)
		assert.ErrorIs(t, err, ErrRefused)
		assert.False(t, ok)
	})

	t.Run("declined prompt returns false without error", func(t *testing.T) {
		h := newHarness(t, output.ModePretty)
		h.answer = false
		ok, err := h.guard.Confirm("Delete tag 'vip'?", false)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func decodeEnvelope(t *testing.T, buf *bytes.Buffer) output.Envelope {
	t.Helper()
	var env output.Envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	return env
}

func TestFinishEnvelopes(t *testing.T) {
	t.Run("noop", func(t *testing.T) {
		h := newHarness(t, output.ModeJSON)
		outcome := &Outcome[int]{State: StateNoop}
		require.NoError(t, Finish(h.guard.p, "import", outcome))
		env := decodeEnvelope(t, h.out)
		assert.True(t, env.Success)
		data := env.Data.(map[string]interface{})
		assert.Equal(t, float64(0), data["wouldAffect"])
	})

	t.Run("dry-run", func(t *testing.T) {
		h := newHarness(t, output.ModeJSON)
		outcome := &Outcome[int]{
			State:   StateDryRun,
			Count:   3,
			Preview: []map[string]string{{"email": "a@x.com"}},
		}
		require.NoError(t, Finish(h.guard.p, "import", outcome))
		env := decodeEnvelope(t, h.out)
		assert.True(t, env.Success)
		data := env.Data.(map[string]interface{})
		assert.Equal(t, true, data["dryRun"])
		assert.Equal(t, "import", data["action"])
		assert.Equal(t, float64(3), data["wouldAffect"])
		assert.Len(t, data["preview"], 1)
	})

	t.Run("cancelled is success", func(t *testing.T) {
		h := newHarness(t, output.ModeJSON)
		outcome := &Outcome[int]{State: StateCancelled, Count: 5}
		require.NoError(t, Finish(h.guard.p, "import", outcome))
		env := decodeEnvelope(t, h.out)
		assert.True(t, env.Success)
		data := env.Data.(map[string]interface{})
		assert.Equal(t, true, data["cancelled"])
	})

	t.Run("refused is failure with remediation", func(t *testing.T) {
		h := newHarness(t, output.ModeJSON)
		outcome := &Outcome[int]{State: StateRefused, Count: 5}
		err := Finish(h.guard.p, "import", outcome)
		assert.ErrorIs(t, err, ErrRefused)

		env := decodeEnvelope(t, h.errOut)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Contains(t, *env.Error, "--confirm")
		require.NotNil(t, env.Meta)
		assert.Equal(t, "confirm_required", env.Meta.Code)
	})

	t.Run("executed emits nothing", func(t *testing.T) {
		h := newHarness(t, output.ModeJSON)
		outcome := &Outcome[int]{State: StateExecuted, Count: 5, Result: 5}
		require.NoError(t, Finish(h.guard.p, "import", outcome))
		assert.Empty(t, h.out.String())
	})
}

// JSON mode renders no preview tables or chrome on stdout before the envelope.
func TestJSONModeSuppressesChrome(t *testing.T) {
	h := newHarness(t, output.ModeJSON)
	op := h.operation("Tag Subscribers", emails(20), false)
	op.FormatItem = func(item string, i int) map[string]string {
		return map[string]string{"#": strconv.Itoa(i + 1), "email": item}
	}
	outcome, err := Run(context.Background(), h.guard, op, Options{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, StateExecuted, outcome.State)
	assert.Empty(t, h.out.String())
	assert.Empty(t, h.errOut.String())
}
