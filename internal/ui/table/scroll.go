package table

import "strings"

// ApplyHorizontalScroll clips each line of s to the window [offset, offset+width)
// measured in runes. A width <= 0 leaves s untouched.
func ApplyHorizontalScroll(s string, offset, width int) string {
	if width <= 0 {
		return s
	}
	if offset < 0 {
		offset = 0
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		runes := []rune(line)

		if offset >= len(runes) {
			out = append(out, "")
			continue
		}

		end := min(offset+width, len(runes))
		out = append(out, string(runes[offset:end]))
	}

	return strings.Join(out, "\n")
}
