package cliutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendcast/sendcast-cli/internal/output"
)

func newFlagCmd(jsonFlag, quietFlag bool) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	if jsonFlag {
		_ = cmd.Flags().Set("json", "true")
	}
	if quietFlag {
		_ = cmd.Flags().Set("quiet", "true")
	}
	return cmd
}

func TestMode(t *testing.T) {
	tests := []struct {
		name    string
		json    bool
		quiet   bool
		want    output.Mode
		wantErr bool
	}{
		{name: "default is pretty", want: output.ModePretty},
		{name: "json flag", json: true, want: output.ModeJSON},
		{name: "quiet flag", quiet: true, want: output.ModeQuiet},
		{name: "both flags conflict", json: true, quiet: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := Mode(newFlagCmd(tt.json, tt.quiet))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConflictingOutputFlags)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestMaskCredential(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "short key fully masked", key: "sk_123", want: "****"},
		{name: "boundary length fully masked", key: "0123456789", want: "****"},
		{name: "long key keeps edges", key: "sk_live_abcdef123456", want: "sk_live...3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCredential(tt.key))
		})
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero time", t: time.Time{}, want: "never"},
		{name: "seconds ago", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", t: now.Add(-48 * time.Hour), want: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.t))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "this is a…", Truncate("this is a long value", 10))
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf,
		Column{Header: "EMAIL", Width: 20},
		Column{Header: "STATE"},
	)
	table.PrintHeader()
	table.PrintRow("a@example.com", "active")

	out := buf.String()
	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "STATE")
	assert.Contains(t, out, "a@example.com")
	assert.Contains(t, out, "active")
}
