package table

import "slices"

// Sort orders the body rows with cmp. Equal rows keep their order.
func (t *Table) Sort(cmp func(a, b Row) int) *Table {
	slices.SortStableFunc(t.rows, cmp)
	return t
}

// SortColumn orders the body rows by the cells at column idx. Rows too short to
// have that column compare as empty.
func (t *Table) SortColumn(idx int, cmp func(a, b Cell) int) *Table {
	if cmp == nil {
		cmp = CompareCells
	}
	return t.Sort(func(a, b Row) int {
		return cmp(cellAt(a, idx), cellAt(b, idx))
	})
}

func cellAt(row Row, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return Cell{}
	}
	return row[idx]
}
