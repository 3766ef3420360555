// Package search filters a dictionary against a positional pattern.
package search

import (
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/slotword/internal/pattern"
)

// Matcher tests words against a compiled pattern. It is anchored at both
// ends: a word matches only with exactly as many runes as the pattern.
type Matcher struct {
	folds []rune
}

// Compile builds a matcher for p. Wildcard positions accept any rune.
func Compile(p pattern.Pattern) Matcher {
	folds := make([]rune, p.Len())
	for i := range folds {
		folds[i] = p.At(i).Fold()
	}
	return Matcher{folds: folds}
}

// Len returns the word length the matcher accepts.
func (m Matcher) Len() int {
	return len(m.folds)
}

// Match reports whether word fits the pattern position by position.
func (m Matcher) Match(word string) bool {
	if utf8.RuneCountInString(word) != len(m.folds) {
		return false
	}
	i := 0
	for _, r := range word {
		want := m.folds[i]
		i++
		if want == 0 {
			continue
		}
		if r != want && unicode.ToLower(r) != want {
			return false
		}
	}
	return true
}

// Filter returns the words that match, in input order.
func (m Matcher) Filter(words []string) []string {
	var out []string
	for _, word := range words {
		if m.Match(word) {
			out = append(out, word)
		}
	}
	return out
}
