package stats

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/slotword/internal/model"
)

const (
	terminalWidthBackup = 80
	minBarWidth         = 10
)

// TerminalWidth returns the stdout width, or a fallback when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// renderBars draws one horizontal bar per length, scaled to the largest count.
func renderBars(counts []model.LengthCount, width int) []string {
	if len(counts) == 0 {
		return nil
	}
	labelWidth := len(strconv.Itoa(counts[len(counts)-1].Length))
	countWidth := len(strconv.Itoa(maxCount(counts)))
	barWidth := width - labelWidth - countWidth - 4
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	peak := maxCount(counts)
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		n := 0
		if peak > 0 {
			n = c.Count * barWidth / peak
		}
		if n == 0 && c.Count > 0 {
			n = 1
		}
		label := padCell(strconv.Itoa(c.Length), labelWidth, true)
		lines = append(lines, label+" │"+strings.Repeat("█", n)+" "+strconv.Itoa(c.Count))
	}
	return lines
}
