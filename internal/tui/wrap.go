// Package tui provides the Bubble Tea pattern finder interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = 2

// layoutWords arranges words into column-major aligned columns that fit
// width. Words keep their order reading top to bottom, then left to right.
func layoutWords(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}
	cell := 0
	for _, w := range words {
		if n := runewidth.StringWidth(w); n > cell {
			cell = n
		}
	}
	cell += columnGap

	cols := 1
	if width > 0 {
		cols = (width + columnGap) / cell
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(words) + cols - 1) / cols
	cols = (len(words) + rows - 1) / rows

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if idx >= len(words) {
				break
			}
			word := words[idx]
			last := c == cols-1 || (c+1)*rows+r >= len(words)
			if last {
				b.WriteString(word)
				break
			}
			b.WriteString(runewidth.FillRight(word, cell))
		}
		lines[r] = b.String()
	}
	return lines
}
