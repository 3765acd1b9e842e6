package table

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Align is the horizontal placement of a value inside a column.
type Align int

const (
	Left Align = iota
	Center
	Right
	// Auto right-aligns numbers and left-aligns everything else.
	Auto
)

func (a Align) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	case Auto:
		return "auto"
	default:
		return "align(" + strconv.Itoa(int(a)) + ")"
	}
}

func (a Align) valid() bool {
	return a >= Left && a <= Auto
}

// ParseAlign maps a name ("left", "l", "center", "c", "right", "r", "auto", "a") to an Align.
func ParseAlign(s string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, true
	case "center", "centre", "c":
		return Center, true
	case "right", "r":
		return Right, true
	case "auto", "a", "":
		return Auto, true
	}
	return Auto, false
}

// Pad places value inside width characters using mode. Auto treats value as text;
// use Cell.Pad to get number-aware placement.
func Pad(mode Align, value string, width int, pad string) string {
	switch mode {
	case Left:
		return PadLeft(value, width, pad)
	case Center:
		return PadCenter(value, width, pad)
	case Right:
		return PadRight(value, width, pad)
	default:
		return PadLeft(value, width, pad)
	}
}

// PadLeft left-aligns value, filling the remainder with pad. Values wider than
// width are returned unchanged.
func PadLeft(value string, width int, pad string) string {
	if width <= 0 {
		return ""
	}
	n := width - utf8.RuneCountInString(value)
	if n <= 0 {
		return value
	}
	return value + fill(pad, n)
}

// PadRight right-aligns value.
func PadRight(value string, width int, pad string) string {
	if width <= 0 {
		return ""
	}
	n := width - utf8.RuneCountInString(value)
	if n <= 0 {
		return value
	}
	return fill(pad, n) + value
}

// PadCenter centers value. When the slack is odd the extra character goes to the right.
func PadCenter(value string, width int, pad string) string {
	if width <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(value)
	half := floorDiv(width-n, 2)
	odds := abs(n%2 - width%2)
	return fill(pad, half) + value + fill(pad, half+odds)
}

// fill returns exactly n characters taken from pad, cycling through it rune by rune.
func fill(pad string, n int) string {
	if n <= 0 {
		return ""
	}
	if pad == "" {
		pad = " "
	}
	if utf8.RuneCountInString(pad) == 1 {
		return strings.Repeat(pad, n)
	}

	runes := []rune(pad)
	var b strings.Builder
	b.Grow(n * utf8.UTFMax)
	for i := 0; i < n; i++ {
		b.WriteRune(runes[i%len(runes)])
	}
	return b.String()
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
