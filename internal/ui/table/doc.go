// Package table renders tabular data as a fixed-width text grid with optional
// borders, a title, a heading row and per-column alignment.
//
// Every line of a rendered table has the same rune length:
//
//	.-------------.
//	|    Stats    |
//	|-------------|
//	| name  | qty |
//	|-------|-----|
//	| apple |   3 |
//	| kiwi  |  12 |
//	'-------------'
//
// A Table is configured through chained mutators and rendered on demand.
// Rendering does not change configuration; it only refreshes the cached layout
// reported by ColumnWidths and RowLineCounts. Numbers are right-aligned and
// everything else left-aligned unless a column alignment says otherwise.
//
// Render never fails. Validate and RenderStrict report settings that would break
// the uniform line width, wrapping ErrInvalidLayout.
package table
