package table

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestValueOf(t *testing.T) {
	tests := []struct {
		in       any
		wantKind Kind
		want     string
	}{
		{nil, KindEmpty, ""},
		{"x", KindText, "x"},
		{7, KindNumber, "7"},
		{int64(-3), KindNumber, "-3"},
		{uint8(200), KindNumber, "200"},
		{2.5, KindNumber, "2.5"},
		{float32(0.25), KindNumber, "0.25"},
		{json.Number("1.50"), KindNumber, "1.50"},
		{true, KindText, "true"},
		{[]byte("raw"), KindText, "raw"},
		{stringer{}, KindText, "stringer"},
		{errors.New("boom"), KindText, "boom"},
		{Int(9), KindNumber, "9"},
	}
	for _, tt := range tests {
		c := ValueOf(tt.in)
		assert.Equal(t, tt.wantKind, c.Kind(), "%#v", tt.in)
		assert.Equal(t, tt.want, c.String(), "%#v", tt.in)
	}
}

func TestNumber_fallsBackToText(t *testing.T) {
	assert.Equal(t, KindNumber, Number("12.0").Kind())
	assert.Equal(t, "12.0", Number("12.0").String())
	assert.Equal(t, KindText, Number("12 apples").Kind())

	for _, lit := range []string{"0", "-3", "1.50", "1e3", "2.5E-7"} {
		assert.Equal(t, KindNumber, Number(lit).Kind(), lit)
		assert.Equal(t, lit, Number(lit).String(), lit)
	}
	for _, lit := range []string{"+5", ".5", "5.", "007", "NaN", "inf", "0x1p3", " 5", "1_000"} {
		assert.Equal(t, Text(lit), Number(lit), lit)
	}
}

func TestFloat_nonFinite(t *testing.T) {
	assert.Equal(t, Text("NaN"), Float(math.NaN()))
	assert.Equal(t, Text("+Inf"), Float(math.Inf(1)))
	assert.Equal(t, "NaN ", Float(math.NaN()).Pad(Auto, 4, " "))
}

func TestCell_JSONKeepsLiteral(t *testing.T) {
	for _, lit := range []string{"1.50", "1e3", "-0", "12345678901234567890"} {
		data, err := json.Marshal(Number(lit))
		require.NoError(t, err)
		assert.Equal(t, lit, string(data))

		var back Cell
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, Number(lit), back)
	}
}

func TestCell_lines(t *testing.T) {
	assert.Equal(t, 1, Text("").Lines())
	assert.Equal(t, 3, Text("a\nb\nc").Lines())
	assert.Equal(t, 2, Text("é€").Width())
}

func TestCell_JSON(t *testing.T) {
	row := Row{Text("a"), Int(3), Empty(), Number("1.50")}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", 3, null, 1.50]`, string(data))

	var back Row
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, row, back)

	var mixed Row
	require.NoError(t, json.Unmarshal([]byte(`[true, {"k": 1}, "7"]`), &mixed))
	assert.Equal(t, Text("true"), mixed[0])
	assert.Equal(t, KindText, mixed[1].Kind())
	assert.Equal(t, Text("7"), mixed[2])
}

func TestCompareCells(t *testing.T) {
	assert.Negative(t, CompareCells(Empty(), Int(1)))
	assert.Negative(t, CompareCells(Int(2), Int(10)))
	assert.Negative(t, CompareCells(Int(100), Text("a")))
	assert.Positive(t, CompareCells(Text("b"), Text("a")))
	assert.Zero(t, CompareCells(Float(2), Int(2)))
}
