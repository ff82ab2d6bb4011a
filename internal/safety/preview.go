package safety

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sendcast/sendcast-cli/internal/cliutil"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

// ResolveSampleSize picks how many preview rows to show. A requested
// size <= 0 falls back to the default; the result never exceeds the
// item count.
func ResolveSampleSize(requested, defaultSize, count int) int {
	if count <= 0 {
		return 0
	}
	size := requested
	if size <= 0 {
		size = defaultSize
	}
	if size > count {
		return count
	}
	return size
}

// previewRows projects the first n items to display records.
func previewRows[T any](items []T, n int, format func(T, int) map[string]string) []map[string]string {
	rows := make([]map[string]string, 0, n)
	for i := 0; i < n && i < len(items); i++ {
		if format != nil {
			rows = append(rows, format(items[i], i))
			continue
		}
		rows = append(rows, map[string]string{
			"#":     strconv.Itoa(i + 1),
			"value": fmt.Sprint(items[i]),
		})
	}
	return rows
}

// preferredColumns fixes the display order for well-known record keys;
// anything else sorts alphabetically after them.
var preferredColumns = []string{"#", "email", "name", "tags", "remove_tags", "fields", "value"}

func columnsFor(rows []map[string]string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			seen[key] = true
		}
	}

	var columns []string
	for _, key := range preferredColumns {
		if seen[key] {
			columns = append(columns, key)
			delete(seen, key)
		}
	}
	rest := make([]string, 0, len(seen))
	for key := range seen {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

// renderPreview shows the bounded sample table in human mode. JSON and
// quiet modes render nothing; the preview is never part of the envelope.
func (g *Guard) renderPreview(name string, rows []map[string]string, total int, dangerous bool) {
	if !g.p.Pretty() {
		return
	}

	if dangerous {
		banner := styles.WarningBoxStyle.Render(
			styles.WarningTitleStyle.Render("⚠ "+name+" cannot be undone"))
		fmt.Fprintln(g.p.Out(), banner)
	}

	if len(rows) == 0 {
		g.p.Warnf("no matching records")
		return
	}

	columns := columnsFor(rows)
	tableColumns := make([]cliutil.Column, len(columns))
	for i, col := range columns {
		width := len(col)
		for _, row := range rows {
			if len(row[col]) > width {
				width = len(row[col])
			}
		}
		if width > 40 {
			width = 40
		}
		tableColumns[i] = cliutil.Column{Header: col, Width: width}
	}

	table := cliutil.NewTable(g.p.Out(), tableColumns...)
	table.PrintHeader()
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = row[col]
		}
		table.PrintRow(values...)
	}

	if total > len(rows) {
		g.p.Infof("showing %d of %d item(s) — adjust with --sample", len(rows), total)
	}
	fmt.Fprintln(g.p.Out())
}
