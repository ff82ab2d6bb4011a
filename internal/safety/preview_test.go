package safety

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendcast/sendcast-cli/internal/output"
)

func TestResolveSampleSize(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		def       int
		count     int
		want      int
	}{
		{"zero items", 5, 10, 0, 0},
		{"unset falls back to default", 0, 10, 50, 10},
		{"negative falls back to default", -3, 10, 50, 10},
		{"default capped by count", 0, 10, 4, 4},
		{"requested wins", 3, 10, 50, 3},
		{"requested capped by count", 25, 10, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSampleSize(tt.requested, tt.def, tt.count))
		})
	}
}

func TestPreviewRowsDefaultFormatter(t *testing.T) {
	rows := previewRows([]string{"a@x.com", "b@y.com", "c@z.com"}, 2, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"#": "1", "value": "a@x.com"}, rows[0])
	assert.Equal(t, map[string]string{"#": "2", "value": "b@y.com"}, rows[1])
}

func TestColumnsForOrdering(t *testing.T) {
	rows := []map[string]string{
		{"tags": "vip", "email": "a@x.com", "zebra": "1", "name": "Alice"},
		{"email": "b@y.com", "alpha": "2"},
	}
	got := columnsFor(rows)
	assert.Equal(t, []string{"email", "name", "tags", "alpha", "zebra"}, got)
}

func TestRenderPreviewHumanMode(t *testing.T) {
	out := &bytes.Buffer{}
	p := output.NewPrinterTo(output.ModePretty, out, &bytes.Buffer{})
	g := NewGuard(p, Config{ConfirmThreshold: 10, DefaultSampleSize: 5}, WithInteractive(true))

	rows := []map[string]string{
		{"email": "a@x.com", "name": "Alice"},
		{"email": "b@y.com", "name": "Bob"},
	}
	g.renderPreview("Import Subscribers", rows, 8, false)

	rendered := out.String()
	assert.Contains(t, rendered, "a@x.com")
	assert.Contains(t, rendered, "Bob")
	assert.Contains(t, rendered, "showing 2 of 8")
	assert.NotContains(t, rendered, "cannot be undone")
}

func TestRenderPreviewDangerBanner(t *testing.T) {
	out := &bytes.Buffer{}
	p := output.NewPrinterTo(output.ModePretty, out, &bytes.Buffer{})
	g := NewGuard(p, Config{}, WithInteractive(true))

	g.renderPreview("Suppress Subscribers", []map[string]string{{"email": "a@x.com"}}, 1, true)
	assert.Contains(t, out.String(), "cannot be undone")
}

func TestRenderPreviewEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	p := output.NewPrinterTo(output.ModePretty, out, &bytes.Buffer{})
	g := NewGuard(p, Config{}, WithInteractive(true))

	g.renderPreview("Tag Subscribers", nil, 0, false)
	assert.Contains(t, out.String(), "no matching records")
}

func TestRenderPreviewSilentOutsidePretty(t *testing.T) {
	for _, mode := range []output.Mode{output.ModeJSON, output.ModeQuiet} {
		out := &bytes.Buffer{}
		p := output.NewPrinterTo(mode, out, &bytes.Buffer{})
		g := NewGuard(p, Config{}, WithInteractive(true))

		g.renderPreview("Tag Subscribers", []map[string]string{{"email": "a@x.com"}}, 1, true)
		assert.Empty(t, out.String())
	}
}
