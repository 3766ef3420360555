// Package pattern holds the per-position letter slots a search is built from.
package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Wildcard is the rune used for wildcard slots in the textual pattern form.
const Wildcard = '?'

var (
	// ErrInvalidLength is returned when a requested pattern length is out of range.
	ErrInvalidLength = errors.New("invalid pattern length")
	// ErrInvalidCharacter is returned for input that is not a letter, space or '?'.
	ErrInvalidCharacter = errors.New("invalid character")
)

// Slot is one pattern position. The zero value is a wildcard.
type Slot struct {
	letter rune
	fold   rune
}

// Letter returns a slot fixed to r, upper-cased for display.
func Letter(r rune) Slot {
	return Slot{letter: unicode.ToUpper(r), fold: unicode.ToLower(r)}
}

// IsWildcard reports whether the slot matches any character.
func (s Slot) IsWildcard() bool {
	return s.letter == 0
}

// Rune returns the display (upper-case) letter, or 0 for a wildcard.
func (s Slot) Rune() rune {
	return s.letter
}

// Fold returns the lower-case letter used for matching, or 0 for a wildcard.
func (s Slot) Fold() rune {
	return s.fold
}

// Display renders the slot the way an input box shows it.
func (s Slot) Display() string {
	if s.IsWildcard() {
		return ""
	}
	return string(s.letter)
}

// Pattern is an immutable snapshot of slot values in position order.
type Pattern struct {
	slots []Slot
}

// New builds a pattern from slots. The slice is copied.
func New(slots []Slot) Pattern {
	return Pattern{slots: append([]Slot(nil), slots...)}
}

// Parse reads the textual pattern form used on the command line. '?', '_',
// '.' and ' ' are wildcards; every other rune must be a letter.
func Parse(s string) (Pattern, error) {
	if s == "" {
		return Pattern{}, errors.Wrap(ErrInvalidLength, "pattern is empty")
	}
	slots := make([]Slot, 0, utf8.RuneCountInString(s))
	for i, r := range []rune(s) {
		switch {
		case r == Wildcard || r == '_' || r == '.' || r == ' ':
			slots = append(slots, Slot{})
		case unicode.IsLetter(r):
			slots = append(slots, Letter(r))
		default:
			return Pattern{}, errors.Wrapf(ErrInvalidCharacter, "position %d: %q", i+1, r)
		}
	}
	return Pattern{slots: slots}, nil
}

// Len returns the number of slots.
func (p Pattern) Len() int {
	return len(p.slots)
}

// At returns the slot at position i.
func (p Pattern) At(i int) Slot {
	return p.slots[i]
}

// Slots returns a copy of the slots.
func (p Pattern) Slots() []Slot {
	return append([]Slot(nil), p.slots...)
}

// String renders the pattern in lower case with '?' for wildcards.
func (p Pattern) String() string {
	var b strings.Builder
	for _, s := range p.slots {
		if s.IsWildcard() {
			b.WriteRune(Wildcard)
			continue
		}
		b.WriteRune(s.Fold())
	}
	return b.String()
}

// Display renders the pattern in upper case with '_' for wildcards.
func (p Pattern) Display() string {
	var b strings.Builder
	for _, s := range p.slots {
		if s.IsWildcard() {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// Wildcards returns the number of wildcard slots.
func (p Pattern) Wildcards() int {
	n := 0
	for _, s := range p.slots {
		if s.IsWildcard() {
			n++
		}
	}
	return n
}
