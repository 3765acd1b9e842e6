package table

// layout is the derived state of one render pass.
type layout struct {
	cols      int
	widths    []int
	rowLines  []int
	justWidth int // widest column, used by every column in justify mode
	total     int
}

// computeLayout measures heading and rows over cols columns.
func computeLayout(heading Row, rows []Row, cols, spacing int, justify bool) layout {
	l := layout{
		cols:   cols,
		widths: make([]int, cols),
	}

	measure := func(row Row) {
		for k := 0; k < cols && k < len(row); k++ {
			if w := row[k].Width(); w > l.widths[k] {
				l.widths[k] = w
			}
		}
	}
	if heading != nil {
		measure(heading)
	}
	for _, row := range rows {
		measure(row)
	}

	l.rowLines = make([]int, len(rows))
	for i, row := range rows {
		for _, c := range row {
			if n := c.Lines(); n > l.rowLines[i] {
				l.rowLines[i] = n
			}
		}
	}

	for _, w := range l.widths {
		if w > l.justWidth {
			l.justWidth = w
		}
	}

	l.total = 3 * cols
	for _, w := range l.widths {
		if justify {
			l.total += l.justWidth
		} else {
			l.total += w + spacing
		}
	}
	if justify {
		l.total += cols
	}
	l.total -= spacing

	return l
}

// columnWidth is the padded width of column k.
func (l layout) columnWidth(k int, justify bool) int {
	if justify {
		return l.justWidth
	}
	return l.widths[k]
}

// lineWidth is the rune length every rendered line shares.
func (l layout) lineWidth() int {
	return l.total - l.cols + 2
}
