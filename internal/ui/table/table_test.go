package table

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_maxCellsGrows(t *testing.T) {
	tbl := New("")
	assert.Equal(t, 0, tbl.MaxCells())

	tbl.AddRow(Strings("a"))
	tbl.AddRow(Strings("a", "b", "c"))
	tbl.AddRow(Strings("a", "b"))
	assert.Equal(t, 3, tbl.MaxCells())

	tbl.SetHeading(Strings("1", "2", "3", "4"))
	assert.Equal(t, 4, tbl.MaxCells())

	tbl.ClearRows()
	assert.Equal(t, 4, tbl.MaxCells())
	assert.Empty(t, tbl.Rows())
	assert.Equal(t, Strings("1", "2", "3", "4"), tbl.Heading())
}

func TestTable_reset(t *testing.T) {
	tbl := New("first", WithPrefix("  "))
	tbl.SetHeading(Strings("h")).SetJustify(true).SetAlign(0, Right).RemoveBorder()
	tbl.AddRow(Strings("r"))

	tbl.Reset("second")
	assert.Equal(t, "second", tbl.Title())
	assert.Nil(t, tbl.Heading())
	assert.Empty(t, tbl.Rows())
	assert.Empty(t, tbl.Aligns())
	assert.True(t, tbl.Bordered())
	assert.Equal(t, DefaultBorder, tbl.Border())
	assert.Equal(t, "  ", tbl.Prefix())

	tbl.Clear()
	assert.Equal(t, "", tbl.Title())
}

func TestTable_setBorderDefaults(t *testing.T) {
	tbl := New("")
	tbl.SetBorder(Border{Edge: "!"})
	assert.Equal(t, Border{Edge: "!", Fill: "-", Top: ".", Bottom: "'"}, tbl.Border())
}

func TestTable_rowsAreCopies(t *testing.T) {
	tbl := New("")
	tbl.AddRow(Strings("a"))
	rows := tbl.Rows()
	rows[0][0] = Text("changed")
	assert.Equal(t, Text("a"), tbl.Rows()[0][0])

	h := Strings("h")
	tbl.SetHeading(h)
	h[0] = Text("changed")
	assert.Equal(t, Text("h"), tbl.Heading()[0])
}

func TestTable_setAlignAutoClears(t *testing.T) {
	tbl := New("")
	tbl.SetAlign(1, Left)
	assert.Equal(t, map[int]Align{1: Left}, tbl.Aligns())
	tbl.SetAlign(1, Auto)
	assert.Empty(t, tbl.Aligns())
}

func TestAddData(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	users := []user{{"ann", 31}, {"bob", 7}}

	tbl := New("")
	AddData(tbl, users, func(u user) Row { return Values(u.name, u.age) })
	assert.Equal(t, []Row{Values("ann", 31), Values("bob", 7)}, tbl.Rows())

	AddData(tbl, []user(nil), func(u user) Row { return Values(u.name) })
	assert.Len(t, tbl.Rows(), 2)

	m := New("")
	AddDataMatrix(m, users, func(u user) []Row {
		return []Row{Values(u.name), Values(u.age)}
	})
	assert.Len(t, m.Rows(), 4)
	assert.Equal(t, 1, m.MaxCells())

	AddData(tbl, users, nil)
	AddDataMatrix(m, users, nil)
	assert.Len(t, tbl.Rows(), 2)
	assert.Len(t, m.Rows(), 4)
}

func TestTable_sort(t *testing.T) {
	tbl := New("")
	tbl.AddValues("b", 2)
	tbl.AddValues("a", 10)
	tbl.AddValues("c", 1)
	tbl.AddValues("d")

	tbl.SortColumn(1, nil)
	var got []string
	for _, r := range tbl.Rows() {
		got = append(got, r[0].String())
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)

	tbl.Sort(func(a, b Row) int { return CompareCells(b[0], a[0]) })
	assert.Equal(t, "d", tbl.Rows()[0][0].String())
	assert.Equal(t, "a", tbl.Rows()[3][0].String())
}

func TestSnapshot_roundTrip(t *testing.T) {
	tbl := New("Inventory")
	tbl.SetHeading(Strings("item", "count"))
	tbl.AddValues("bolts", 120)
	tbl.AddValues("nuts", nil)
	tbl.AddValues("washers", 1.5, "extra")

	back := FromSnapshot(tbl.Snapshot())
	assert.Equal(t, tbl.Render(), back.Render())

	data, err := json.Marshal(tbl)
	require.NoError(t, err)

	var decoded Table
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tbl.Render(), decoded.Render())
}

func TestSnapshot_withoutHeading(t *testing.T) {
	tbl := New("")
	tbl.AddRow(Strings("x"))

	snap := tbl.Snapshot()
	assert.Equal(t, Row{}, snap.Heading)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"","heading":[],"rows":[["x"]]}`, string(data))

	assert.Equal(t, tbl.Render(), FromSnapshot(snap).Render())
}

func TestSnapshot_dropsStyle(t *testing.T) {
	tbl := New("styled", WithPrefix("# "))
	tbl.SetJustify(true).SetAlign(0, Right).SetUniformBorder("+")
	tbl.AddRow(Strings("a", "bbb"))

	back := FromSnapshot(tbl.Snapshot())
	assert.False(t, back.Justified())
	assert.Empty(t, back.Aligns())
	assert.Equal(t, DefaultBorder, back.Border())
	assert.Equal(t, "", back.Prefix())
	assert.NotEqual(t, tbl.Render(), back.Render())
	assert.Equal(t, tbl.Rows(), back.Rows())
}

func TestValidate(t *testing.T) {
	tbl := New("ok")
	tbl.SetHeading(Strings("a", "b"))
	tbl.AddRow(Strings("1", "2"))
	require.NoError(t, tbl.Validate())

	out, err := tbl.RenderStrict()
	require.NoError(t, err)
	assert.Equal(t, tbl.Render(), out)
}

func TestValidate_collectsProblems(t *testing.T) {
	tbl := New("a title far too wide for this table")
	tbl.AddRow(Strings("x", "two\nlines"))
	tbl.SetAlign(5, Right)
	tbl.SetAlign(-1, Left)
	tbl.SetAlign(0, Align(42))
	tbl.SetBorder(Border{Edge: "||"})

	err := tbl.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)

	msg := err.Error()
	for _, want := range []string{"column 5", "column -1", "align(42)", "edge glyph", "multi-line", "title needs"} {
		assert.Contains(t, msg, want)
	}

	out, err := tbl.RenderStrict()
	assert.ErrorIs(t, err, ErrInvalidLayout)
	assert.Empty(t, out)

	// the lenient path still renders
	assert.NotEmpty(t, tbl.Render())
}

func TestValidate_rowsWithoutColumns(t *testing.T) {
	tbl := New("")
	require.NoError(t, tbl.Validate(), "an empty table renders as a uniform frame")

	tbl.AddRow(Row{})
	assert.Equal(t, []string{".", " |", "'"}, tbl.Lines())
	assert.ErrorIs(t, tbl.Validate(), ErrInvalidLayout)

	heading := New("")
	heading.SetHeading(Row{})
	assert.ErrorIs(t, heading.Validate(), ErrInvalidLayout)

	tbl.AddRow(Strings("x"))
	assert.NoError(t, tbl.Validate())
}

func TestValidate_removedBorderIsValid(t *testing.T) {
	tbl := New("")
	tbl.AddRow(Strings("a"))
	tbl.RemoveBorder()
	assert.NoError(t, tbl.Validate())
}

func TestApplyHorizontalScroll(t *testing.T) {
	s := "abcdef\nxy\n"
	assert.Equal(t, s, ApplyHorizontalScroll(s, 2, 0))
	assert.Equal(t, "cde\n\n", ApplyHorizontalScroll(s, 2, 3))
	assert.Equal(t, "ab\nxy\n", ApplyHorizontalScroll(s, -1, 2))

	lines := strings.Split(ApplyHorizontalScroll("ééé", 1, 1), "\n")
	assert.Equal(t, []string{"é"}, lines)
}
