// Package stats contains dictionary statistics and reporting.
package stats

import (
	"sort"
	"unicode/utf8"

	"github.com/verte-zerg/slotword/internal/model"
)

// LengthHistogram counts words by rune length, shortest first.
func LengthHistogram(words []string) []model.LengthCount {
	counts := map[int]int{}
	for _, word := range words {
		counts[utf8.RuneCountInString(word)]++
	}
	out := make([]model.LengthCount, 0, len(counts))
	for length, count := range counts {
		out = append(out, model.LengthCount{Length: length, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Length < out[j].Length
	})
	return out
}

func totalCount(counts []model.LengthCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

func maxCount(counts []model.LengthCount) int {
	peak := 0
	for _, c := range counts {
		if c.Count > peak {
			peak = c.Count
		}
	}
	return peak
}
