package table

// AddData appends one row per element of data, built by fn. A nil fn adds nothing.
func AddData[T any](t *Table, data []T, fn func(T) Row) *Table {
	if fn == nil {
		return t
	}
	for _, item := range data {
		t.AddRow(fn(item))
	}
	return t
}

// AddDataMatrix appends every row fn builds from each element of data.
func AddDataMatrix[T any](t *Table, data []T, fn func(T) []Row) *Table {
	if fn == nil {
		return t
	}
	for _, item := range data {
		t.AddRows(fn(item))
	}
	return t
}
