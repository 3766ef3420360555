package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherCountsRunesNotBytes(t *testing.T) {
	m := Compile(mustPattern(t, "ł?dź"))
	assert.Equal(t, 4, m.Len())
	assert.True(t, m.Match("łódź"))
	assert.False(t, m.Match("lodz"))
	assert.False(t, m.Match("łódźa"))
}

func TestMatcherWildcardAcceptsAnyRune(t *testing.T) {
	m := Compile(mustPattern(t, "?"))
	for _, w := range []string{"a", "ż", "ß", "ж"} {
		assert.True(t, m.Match(w), w)
	}
	assert.False(t, m.Match(""))
	assert.False(t, m.Match("ab"))
}

func TestMatcherFilterKeepsOrder(t *testing.T) {
	m := Compile(mustPattern(t, "k??"))
	got := m.Filter([]string{"kot", "psy", "kij", "kos", "ko"})
	assert.Equal(t, []string{"kot", "kij", "kos"}, got)
}

func TestCollatorFallsBackToRoot(t *testing.T) {
	c := NewCollator("not a locale!")
	assert.Equal(t, "und", c.Locale())
	words := []string{"b", "a"}
	c.Sort(words)
	assert.Equal(t, []string{"a", "b"}, words)
}
