package table

import (
	"strings"
)

// Render formats the table. Lines are joined with "\n" and each starts with the prefix.
func (t *Table) Render() string {
	return t.prefix + strings.Join(t.lines(), "\n"+t.prefix)
}

// Lines renders the table into separate lines without the prefix.
func (t *Table) Lines() []string {
	return t.lines()
}

func (t *Table) lines() []string {
	l := computeLayout(t.heading, t.rows, t.maxCells, t.spacing, t.justify)
	t.colWidths = l.widths
	t.rowLines = l.rowLines

	inner := l.total - l.cols + 1
	out := make([]string, 0, len(t.rows)+6)

	if t.bordered {
		out = append(out, t.separator(inner, t.border.Top))
	}
	if t.title != "" {
		out = append(out, t.renderTitle(inner))
		if t.bordered {
			out = append(out, t.separator(inner, t.border.Edge))
		}
	}
	if t.heading != nil {
		forced := t.headingAlign
		out = append(out, t.renderRow(l, t.heading, " ", &forced))
		out = append(out, t.rowSeparator(l))
	}
	for _, row := range t.rows {
		out = append(out, t.renderRow(l, row, " ", nil))
	}
	if t.bordered {
		out = append(out, t.separator(inner, t.border.Bottom))
	}
	return out
}

// ----- Frame -----

// separator draws a horizontal line of width+1 characters capped by corner.
func (t *Table) separator(width int, corner string) string {
	return corner + PadRight(corner, width, t.border.Fill)
}

// rowSeparator is the divider under the heading, drawn as a row of blank cells.
func (t *Table) rowSeparator(l layout) string {
	return t.renderRow(l, make(Row, l.cols), t.border.Fill, nil)
}

func (t *Table) renderTitle(width int) string {
	name := " " + t.title + " "
	return t.border.Edge + Text(name).Pad(t.titleAlign, width-1, " ") + t.border.Edge
}

// ----- Rows -----

// renderRow pads every cell of row to its column width and joins them with sep and
// the edge glyph. forced overrides column alignment when not nil. Missing trailing
// cells render empty.
func (t *Table) renderRow(l layout, row Row, sep string, forced *Align) string {
	edge := t.border.Edge
	if l.cols == 0 {
		return sep + edge
	}

	parts := make([]string, l.cols)
	for k := 0; k < l.cols; k++ {
		var cell Cell
		if k < len(row) {
			cell = row[k]
		}
		mode := t.columnAlign(k)
		if forced != nil {
			mode = *forced
		}
		parts[k] = cell.Pad(mode, l.columnWidth(k, t.justify), sep)
	}

	var b strings.Builder
	b.WriteString(edge)
	b.WriteString(sep)
	b.WriteString(strings.Join(parts, sep+edge+sep))
	b.WriteString(sep)
	b.WriteString(edge)
	return b.String()
}
