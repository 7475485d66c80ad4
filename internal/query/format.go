package query

import (
	"strings"

	"fpl-stats-mcp/internal/table"
)

// Format renders a table as aligned plain text for the model to read.
// Nil cells print as "-", timestamps as "2006-01-02 15:04".
func Format(t *table.Table) string {
	if len(t.Rows) == 0 {
		return strings.Join(t.Columns, "  ") + "\n(no rows)"
	}

	widths := make([]int, len(t.Columns))
	cells := make([][]string, len(t.Rows))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for r, row := range t.Rows {
		cells[r] = make([]string, len(t.Columns))
		for i, c := range t.Columns {
			s := stringify(row[c])
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	last := len(t.Columns) - 1
	var b strings.Builder
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == last {
			b.WriteString(c)
			continue
		}
		b.WriteString(pad(c, widths[i]))
	}
	for _, row := range cells {
		b.WriteByte('\n')
		for i, s := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == last {
				b.WriteString(s)
				continue
			}
			b.WriteString(pad(s, widths[i]))
		}
	}
	return b.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
