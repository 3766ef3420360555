package stats

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/slotword/internal/model"
)

var lengthTableHeaders = []string{"Length", "Words", "Share"}

// lengthTable renders one row per word length with its count and share of
// total. Every column is numeric, so cells are right-aligned.
func lengthTable(counts []model.LengthCount, total int) []string {
	rows := make([][]string, 0, len(counts)+1)
	rows = append(rows, lengthTableHeaders)
	for _, c := range counts {
		share := 0.0
		if total > 0 {
			share = float64(c.Count) / float64(total) * 100
		}
		rows = append(rows, []string{
			strconv.Itoa(c.Length),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.2f%%", share),
		})
	}

	widths := make([]int, len(lengthTableHeaders))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)) + cell
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

// padCell pads value with spaces to width runes, on the left when rightAlign is set.
func padCell(value string, width int, rightAlign bool) string {
	valueWidth := utf8.RuneCountInString(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
