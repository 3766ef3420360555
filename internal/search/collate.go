package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator sorts words with the rules of a language.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// NewCollator returns a collator for a BCP 47 locale such as "pl" or
// "en-GB". An empty or unknown locale uses the root collation order.
func NewCollator(locale string) *Collator {
	tag := language.Und
	if locale = strings.TrimSpace(locale); locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return &Collator{tag: tag, c: collate.New(tag)}
}

// Locale returns the resolved locale tag.
func (c *Collator) Locale() string {
	return c.tag.String()
}

// Sort orders words in place. Ties under the collation fall back to
// code-point order so the output is stable across runs.
func (c *Collator) Sort(words []string) {
	sort.SliceStable(words, func(i, j int) bool {
		switch c.c.CompareString(words[i], words[j]) {
		case -1:
			return true
		case 1:
			return false
		default:
			return words[i] < words[j]
		}
	})
}

// Compare returns -1, 0 or 1 depending on the collation order of a and b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
