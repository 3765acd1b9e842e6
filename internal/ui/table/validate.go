package table

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidLayout marks configurations that Render tolerates but that produce
// a grid whose lines are not all the same width, or settings that are ignored.
var ErrInvalidLayout = errors.New("invalid table layout")

// Validate reports every setting that breaks the uniform-width guarantee. The
// returned error wraps ErrInvalidLayout for each problem found.
func (t *Table) Validate() error {
	var result *multierror.Error

	invalid := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLayout}, args...)...))
	}

	if t.maxCells == 0 && (len(t.rows) > 0 || t.heading != nil) {
		invalid("table has rows but no columns")
	}

	idx := make([]int, 0, len(t.aligns))
	for k := range t.aligns {
		idx = append(idx, k)
	}
	sort.Ints(idx)
	for _, k := range idx {
		a := t.aligns[k]
		if k < 0 || k >= t.maxCells {
			invalid("alignment set for column %d but the table has %d columns", k, t.maxCells)
		}
		if !a.valid() {
			invalid("column %d has unknown alignment %s", k, a)
		}
	}
	if !t.titleAlign.valid() {
		invalid("unknown title alignment %s", t.titleAlign)
	}
	if !t.headingAlign.valid() {
		invalid("unknown heading alignment %s", t.headingAlign)
	}

	glyphs := []struct {
		name, glyph string
	}{
		{"edge", t.border.Edge},
		{"fill", t.border.Fill},
		{"top", t.border.Top},
		{"bottom", t.border.Bottom},
	}
	for _, g := range glyphs {
		if n := runeLen(g.glyph); n != 1 {
			invalid("%s glyph %q is %d characters wide, want 1", g.name, g.glyph, n)
		}
	}

	check := func(where string, row Row) {
		for k, c := range row {
			if c.Lines() > 1 {
				invalid("%s column %d holds a multi-line value", where, k)
			}
		}
	}
	if t.heading != nil {
		check("heading", t.heading)
	}
	for i, row := range t.rows {
		check(fmt.Sprintf("row %d", i), row)
	}

	if t.title != "" {
		l := computeLayout(t.heading, t.rows, t.maxCells, t.spacing, t.justify)
		room := l.total - l.cols
		if need := runeLen(t.title) + 2; need > room {
			invalid("title needs %d characters but the table interior is %d", need, room)
		}
	}

	return result.ErrorOrNil()
}

// RenderStrict validates the table before rendering it.
func (t *Table) RenderStrict() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t.Render(), nil
}
