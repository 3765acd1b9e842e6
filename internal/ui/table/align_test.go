package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		mode  Align
		value string
		width int
		pad   string
		want  string
	}{
		{"left", Left, "ab", 5, "*", "ab***"},
		{"right", Right, "ab", 5, "*", "***ab"},
		{"center odd slack leans right", Center, "ab", 5, "*", "*ab**"},
		{"center even slack", Center, "ab", 6, "*", "**ab**"},
		{"center one extra", Center, "ab", 3, "*", "ab*"},
		{"center odd value", Center, "abc", 6, "-", "-abc--"},
		{"center wider than width", Center, "abcd", 3, "*", "abcd"},
		{"center empty value", Center, "", 4, ".", "...."},
		{"auto is left for text", Auto, "ab", 4, " ", "ab  "},
		{"zero width", Left, "ab", 0, "*", ""},
		{"negative width", Right, "ab", -3, "*", ""},
		{"no truncation", Left, "abcdef", 3, "*", "abcdef"},
		{"exact width", Right, "abc", 3, "*", "abc"},
		{"multi-character pad", Left, "a", 4, "xy", "axyx"},
		{"empty pad means space", Right, "a", 3, "", "  a"},
		{"runes count once", Left, "né", 4, ".", "né.."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.mode, tt.value, tt.width, tt.pad))
		})
	}
}

func TestCellPad_auto(t *testing.T) {
	assert.Equal(t, "   42", Int(42).Pad(Auto, 5, " "))
	assert.Equal(t, "42   ", Text("42").Pad(Auto, 5, " "))
	assert.Equal(t, " 1.5", Float(1.5).Pad(Auto, 4, " "))
	assert.Equal(t, "---", Empty().Pad(Auto, 3, "-"))
	assert.Equal(t, "42   ", Int(42).Pad(Left, 5, " "))
	assert.Equal(t, "", Int(42).Pad(Auto, 0, " "))
}

func TestParseAlign(t *testing.T) {
	for in, want := range map[string]Align{
		"left": Left, "L": Left, "center": Center, "c": Center,
		"right": Right, " r ": Right, "auto": Auto, "": Auto,
	} {
		got, ok := ParseAlign(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseAlign("middle")
	assert.False(t, ok)
}

func TestAlign_String(t *testing.T) {
	assert.Equal(t, "center", Center.String())
	assert.Equal(t, "align(9)", Align(9).String())
}
