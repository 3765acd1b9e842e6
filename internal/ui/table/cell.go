package table

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind tags what a Cell holds. Auto alignment is decided from it.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
)

// Cell is one value in a row. The zero value is an empty cell.
type Cell struct {
	kind Kind
	text string
	num  float64
}

// Row is an ordered sequence of cells. Rows in a table may have different lengths.
type Row []Cell

func Empty() Cell { return Cell{} }

func Text(s string) Cell { return Cell{kind: KindText, text: s} }

func Int(n int64) Cell {
	return Cell{kind: KindNumber, text: strconv.FormatInt(n, 10), num: float64(n)}
}

func Uint(n uint64) Cell {
	return Cell{kind: KindNumber, text: strconv.FormatUint(n, 10), num: float64(n)}
}

// Float returns a Number cell. NaN and infinities are not numbers in a snapshot
// and become Text.
func Float(f float64) Cell {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Text(formatFloat(f))
	}
	return Cell{kind: KindNumber, text: formatFloat(f), num: f}
}

// numberLiteral is the JSON number grammar.
var numberLiteral = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

// Number keeps the literal form of a numeric value, e.g. "1.50" from a CSV file or a
// database NUMERIC column. Only JSON number literals qualify, so the literal survives
// a snapshot unchanged; anything else ("+5", ".5", "007", "NaN", "0x1p3") is Text.
func Number(s string) Cell {
	if !numberLiteral.MatchString(s) {
		return Text(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Text(s)
	}
	return Cell{kind: KindNumber, text: s, num: f}
}

// ValueOf converts an arbitrary Go value into a Cell.
func ValueOf(v any) Cell {
	switch val := v.(type) {
	case nil:
		return Empty()
	case Cell:
		return val
	case string:
		return Text(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return Uint(uint64(val))
	case uint8:
		return Uint(uint64(val))
	case uint16:
		return Uint(uint64(val))
	case uint32:
		return Uint(uint64(val))
	case uint64:
		return Uint(val)
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case json.Number:
		return Number(val.String())
	case []byte:
		return Text(string(val))
	case fmt.Stringer:
		return Text(val.String())
	default:
		return Text(fmt.Sprint(v))
	}
}

// Values converts loose values into a Row.
func Values(vs ...any) Row {
	row := make(Row, len(vs))
	for i, v := range vs {
		row[i] = ValueOf(v)
	}
	return row
}

// Strings converts a string slice into a Row of text cells.
func Strings(ss ...string) Row {
	row := make(Row, len(ss))
	for i, s := range ss {
		row[i] = Text(s)
	}
	return row
}

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// Float64 returns the numeric value of a Number cell.
func (c Cell) Float64() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

func (c Cell) String() string { return c.text }

// Width is the visible width of the cell: its rune count.
func (c Cell) Width() int { return utf8.RuneCountInString(c.text) }

// Lines is the number of newline-delimited segments in the cell.
func (c Cell) Lines() int { return strings.Count(c.text, "\n") + 1 }

// Resolve turns Auto into a concrete alignment for this cell.
func (c Cell) Resolve(mode Align) Align {
	if mode != Auto && mode.valid() {
		return mode
	}
	if c.kind == KindNumber {
		return Right
	}
	return Left
}

// Pad places the cell text inside width characters.
func (c Cell) Pad(mode Align, width int, pad string) string {
	return Pad(c.Resolve(mode), c.text, width, pad)
}

// MarshalJSON writes numbers as JSON numbers, empties as null and text as strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindEmpty:
		return []byte("null"), nil
	case KindNumber:
		return []byte(c.text), nil
	default:
		return json.Marshal(c.text)
	}
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*c = Empty()
	case string:
		*c = Text(val)
	case json.Number:
		*c = Number(val.String())
	case bool:
		*c = Text(strconv.FormatBool(val))
	default:
		*c = Text(strings.TrimSpace(string(data)))
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CompareCells orders empty cells first, then numbers by value, then text lexically.
func CompareCells(a, b Cell) int {
	if a.kind != b.kind {
		return kindRank(a.kind) - kindRank(b.kind)
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case KindText:
		return strings.Compare(a.text, b.text)
	}
	return 0
}

func kindRank(k Kind) int {
	switch k {
	case KindEmpty:
		return 0
	case KindNumber:
		return 1
	default:
		return 2
	}
}
