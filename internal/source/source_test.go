package source

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrutik5321/dhumal/internal/ui/table"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("t.JSON"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/t.yml"))
	assert.Equal(t, FormatTSV, DetectFormat("t.tsv"))
	assert.Equal(t, FormatCSV, DetectFormat("t.txt"))
	assert.Equal(t, FormatCSV, DetectFormat(""))
}

func TestReadCSV(t *testing.T) {
	in := "name,qty\napple,3\nkiwi,12,extra\n"

	tbl, err := ReadCSV(strings.NewReader(in), CSVOptions{Heading: true})
	require.NoError(t, err)
	assert.Equal(t, table.Strings("name", "qty"), tbl.Heading())
	require.Len(t, tbl.Rows(), 2)
	assert.True(t, tbl.Rows()[0][1].IsNumber())
	assert.Equal(t, 3, tbl.MaxCells())

	lines := strings.Split(tbl.Render(), "\n")
	assert.Equal(t, "| apple |   3 |       |", lines[3])
	assert.Equal(t, "| kiwi  |  12 | extra |", lines[4])
}

func TestReadCSV_rawText(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("007\n"), CSVOptions{RawText: true})
	require.NoError(t, err)
	assert.Nil(t, tbl.Heading())
	assert.Equal(t, table.Text("007"), tbl.Rows()[0][0])
}

func TestReadCSV_malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,\"b\n"), CSVOptions{})
	assert.ErrorContains(t, err, "read csv")
}

func TestRead_tsv(t *testing.T) {
	tbl, err := Read(strings.NewReader("a\tb\n1\t2\n"), FormatTSV, CSVOptions{Heading: true})
	require.NoError(t, err)
	assert.Equal(t, table.Strings("a", "b"), tbl.Heading())

	_, err = Read(strings.NewReader(""), "xml", CSVOptions{})
	assert.Error(t, err)
}

func TestReadSnapshot(t *testing.T) {
	js := `{"title":"Fleet","heading":["host","load"],"rows":[["a",0.5],["b",null]]}`
	fromJSON, err := ReadSnapshot(strings.NewReader(js), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Fleet", fromJSON.Title())
	assert.True(t, fromJSON.Rows()[0][1].IsNumber())
	assert.True(t, fromJSON.Rows()[1][1].IsEmpty())

	ym := `
title: Fleet
heading: [host, load]
rows:
  - [a, 0.5]
  - [b, null]
`
	fromYAML, err := ReadSnapshot(strings.NewReader(ym), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, fromJSON.Render(), fromYAML.Render())

	_, err = ReadSnapshot(strings.NewReader("{"), FormatJSON)
	assert.ErrorContains(t, err, "parse snapshot")
}

func TestWriteSnapshot_roundTrip(t *testing.T) {
	tbl := table.New("inv")
	tbl.SetHeading(table.Strings("item", "n"))
	tbl.AddValues("bolt", 4)

	for _, format := range []string{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, WriteSnapshot(&buf, tbl, format))

		back, err := ReadSnapshot(&buf, format)
		require.NoError(t, err)
		assert.Equal(t, tbl.Render(), back.Render(), format)
	}
}

func TestSnapshot_keepsCSVLiterals(t *testing.T) {
	fields := []string{"+5", ".5", "007", "1.50", "1e3", "-0", "nan", "inf", "0x1p3", "12", "", "true", "null"}

	for _, field := range fields {
		tbl, err := ReadCSV(strings.NewReader("name,v\nx,\""+field+"\"\n"), CSVOptions{Heading: true})
		require.NoError(t, err)
		want := tbl.Render()

		for _, format := range []string{FormatJSON, FormatYAML} {
			var buf bytes.Buffer
			require.NoError(t, WriteSnapshot(&buf, tbl, format))

			back, err := ReadSnapshot(&buf, format)
			require.NoError(t, err, "%s %q", format, field)
			assert.Equal(t, want, back.Render(), "%s %q", format, field)
			assert.Equal(t, tbl.Rows(), back.Rows(), "%s %q", format, field)
		}
	}
}

func TestReadCSV_numberLiterals(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("1.50,+5,007,NaN,1e3\n"), CSVOptions{})
	require.NoError(t, err)

	row := tbl.Rows()[0]
	assert.Equal(t, table.Number("1.50"), row[0])
	assert.Equal(t, table.Text("+5"), row[1])
	assert.Equal(t, table.Text("007"), row[2])
	assert.Equal(t, table.Text("NaN"), row[3])
	assert.Equal(t, table.Number("1e3"), row[4])
}

func TestWriteSnapshot_yamlLiterals(t *testing.T) {
	tbl := table.New("")
	tbl.AddRow(table.Row{table.Number("1.50"), table.Text("12"), table.Empty(), table.Int(7)})

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, tbl, FormatYAML))
	out := buf.String()
	assert.Contains(t, out, "- 1.50\n")
	assert.Contains(t, out, `- "12"`)
	assert.Contains(t, out, "- null\n")
	assert.Contains(t, out, "- 7\n")
}
