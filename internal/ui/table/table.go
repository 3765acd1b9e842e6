package table

import (
	"io"
	"maps"
	"slices"
	"unicode/utf8"
)

const defaultSpacing = 1

// Border holds the glyphs used to draw the frame. Empty fields take the defaults.
type Border struct {
	Edge   string // vertical bar between and around columns
	Fill   string // horizontal line
	Top    string // corners of the top line
	Bottom string // corners of the bottom line
}

// DefaultBorder is the classic ".---." / "'---'" frame.
var DefaultBorder = Border{Edge: "|", Fill: "-", Top: ".", Bottom: "'"}

func (b Border) withDefaults() Border {
	if b.Edge == "" {
		b.Edge = DefaultBorder.Edge
	}
	if b.Fill == "" {
		b.Fill = DefaultBorder.Fill
	}
	if b.Top == "" {
		b.Top = DefaultBorder.Top
	}
	if b.Bottom == "" {
		b.Bottom = DefaultBorder.Bottom
	}
	return b
}

// Table is a configurable text table.
type Table struct {
	title        string
	titleAlign   Align
	heading      Row
	headingAlign Align

	rows     []Row
	maxCells int

	aligns  map[int]Align
	spacing int
	justify bool

	bordered bool
	border   Border

	prefix string

	// cache of the most recent render
	colWidths []int
	rowLines  []int
}

// Option configures a Table at construction.
type Option func(*Table)

// WithPrefix prepends prefix to every rendered line.
func WithPrefix(prefix string) Option {
	return func(t *Table) { t.prefix = prefix }
}

// New returns an empty table with the given title.
func New(title string, opts ...Option) *Table {
	t := &Table{}
	t.Reset(title)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reset restores every setting except the line prefix and sets the title.
func (t *Table) Reset(title string) *Table {
	t.title = title
	t.titleAlign = Center
	t.heading = nil
	t.headingAlign = Center
	t.rows = nil
	t.maxCells = 0
	t.aligns = map[int]Align{}
	t.spacing = defaultSpacing
	t.justify = false
	t.colWidths = nil
	t.rowLines = nil
	t.SetBorder(Border{})
	return t
}

// Clear is Reset without a title.
func (t *Table) Clear() *Table {
	return t.Reset("")
}

// ----- Rows -----

// AddRow appends a row. The row is stored as given; callers should not mutate it afterwards.
func (t *Table) AddRow(row Row) *Table {
	if len(row) > t.maxCells {
		t.maxCells = len(row)
	}
	t.rows = append(t.rows, row)
	return t
}

// AddRows appends each row of a matrix.
func (t *Table) AddRows(rows []Row) *Table {
	for _, row := range rows {
		t.AddRow(row)
	}
	return t
}

// AddValues appends one row built from loose values.
func (t *Table) AddValues(vs ...any) *Table {
	return t.AddRow(Values(vs...))
}

// ClearRows drops all body rows and the layout cache. The heading stays.
func (t *Table) ClearRows() *Table {
	t.rows = nil
	t.maxCells = len(t.heading)
	t.colWidths = nil
	t.rowLines = nil
	return t
}

// Rows returns a deep copy of the body rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// MaxCells is the number of columns the table renders.
func (t *Table) MaxCells() int { return t.maxCells }

// ----- Heading and title -----

func (t *Table) SetHeading(row Row) *Table {
	t.heading = slices.Clone(row)
	if t.heading == nil {
		t.heading = Row{}
	}
	if len(t.heading) > t.maxCells {
		t.maxCells = len(t.heading)
	}
	return t
}

func (t *Table) SetHeadingValues(vs ...any) *Table {
	return t.SetHeading(Values(vs...))
}

// Heading returns a copy of the heading, or nil when none is set.
func (t *Table) Heading() Row {
	if t.heading == nil {
		return nil
	}
	return slices.Clone(t.heading)
}

func (t *Table) SetHeadingAlign(a Align) *Table {
	t.headingAlign = a
	return t
}

func (t *Table) SetTitle(title string) *Table {
	t.title = title
	return t
}

func (t *Table) Title() string { return t.title }

func (t *Table) SetTitleAlign(a Align) *Table {
	t.titleAlign = a
	return t
}

// ----- Style -----

// SetAlign sets the alignment of column idx. Auto removes any override.
func (t *Table) SetAlign(idx int, a Align) *Table {
	if a == Auto {
		delete(t.aligns, idx)
		return t
	}
	t.aligns[idx] = a
	return t
}

// Aligns returns a copy of the per-column overrides.
func (t *Table) Aligns() map[int]Align {
	return maps.Clone(t.aligns)
}

func (t *Table) columnAlign(k int) Align {
	if a, ok := t.aligns[k]; ok {
		return a
	}
	return Auto
}

// SetJustify gives every column the width of the widest one.
func (t *Table) SetJustify(on bool) *Table {
	t.justify = on
	return t
}

func (t *Table) Justified() bool { return t.justify }

// SetBorder enables the frame with the given glyphs.
func (t *Table) SetBorder(b Border) *Table {
	t.bordered = true
	t.border = b.withDefaults()
	return t
}

// SetUniformBorder draws the whole frame with one glyph.
func (t *Table) SetUniformBorder(glyph string) *Table {
	return t.SetBorder(Border{Edge: glyph, Fill: glyph, Top: glyph, Bottom: glyph})
}

// RemoveBorder blanks the edge and fill glyphs and drops the top and bottom lines.
// Lines keep their width.
func (t *Table) RemoveBorder() *Table {
	t.bordered = false
	t.border.Edge = " "
	t.border.Fill = " "
	return t
}

func (t *Table) Bordered() bool { return t.bordered }

func (t *Table) Border() Border { return t.border }

func (t *Table) SetPrefix(prefix string) *Table {
	t.prefix = prefix
	return t
}

func (t *Table) Prefix() string { return t.prefix }

// ----- Derived state -----

// ColumnWidths reports the column widths of the last render.
func (t *Table) ColumnWidths() []int { return slices.Clone(t.colWidths) }

// RowLineCounts reports, per body row of the last render, the largest number of
// newline-delimited segments in any of its cells. Rendering does not expand rows
// into several lines.
func (t *Table) RowLineCounts() []int { return slices.Clone(t.rowLines) }

// String renders the table.
func (t *Table) String() string { return t.Render() }

// WriteTo writes the rendered table followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render()+"\n")
	return int64(n), err
}

// Width is the rune length of each rendered line, excluding the prefix.
func (t *Table) Width() int {
	l := computeLayout(t.heading, t.rows, t.maxCells, t.spacing, t.justify)
	return l.lineWidth()
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
