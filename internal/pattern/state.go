package pattern

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// DefaultLength is the slot count a new session starts with.
const DefaultLength = 5

// InputResult describes the outcome of typing into a slot.
type InputResult struct {
	Value    Slot
	Advance  bool
	Rejected bool
}

// State owns the current pattern length and slot values for one session.
// It is not safe for concurrent use.
type State struct {
	slots     []Slot
	maxLength int

	// OnLengthChange, when set, is called after every successful length change.
	OnLengthChange func(length int)
}

// NewState returns a state with length empty slots. Lengths below 1 fall
// back to DefaultLength.
func NewState(length int) *State {
	if length < 1 {
		length = DefaultLength
	}
	return &State{slots: make([]Slot, length)}
}

// Len returns the current pattern length.
func (s *State) Len() int {
	return len(s.slots)
}

// MaxLength returns the upper length bound, 0 when unbounded.
func (s *State) MaxLength() int {
	return s.maxLength
}

// SetMaxLength records the longest word of the active dictionary. A current
// length above the new bound is shrunk to it, keeping the leading letters,
// and SetMaxLength reports true.
func (s *State) SetMaxLength(n int) bool {
	if n < 0 {
		n = 0
	}
	s.maxLength = n
	if n == 0 || len(s.slots) <= n {
		return false
	}
	s.resize(n, true)
	return true
}

// SetLength resizes the pattern. With preserve, values in the overlapping
// prefix are kept and new positions start empty; without it every slot is
// cleared. Out-of-range lengths leave the state untouched.
func (s *State) SetLength(n int, preserve bool) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidLength, "length %d is below 1", n)
	}
	if s.maxLength > 0 && n > s.maxLength {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidLength, "length %d exceeds %d", n, s.maxLength),
			"the longest word in the dictionary has %d letters", s.maxLength,
		)
	}
	s.resize(n, preserve)
	return nil
}

func (s *State) resize(n int, preserve bool) {
	next := make([]Slot, n)
	if preserve {
		copy(next, s.slots)
	}
	s.slots = next
	if s.OnLengthChange != nil {
		s.OnLengthChange(n)
	}
}

// Increment grows the pattern by one slot.
func (s *State) Increment(preserve bool) error {
	return s.SetLength(len(s.slots)+1, preserve)
}

// Decrement shrinks the pattern by one slot. It does nothing at length 1.
// Only the lower bound applies: shrinking from above the maximum always
// moves toward a valid length.
func (s *State) Decrement(preserve bool) {
	if len(s.slots) <= 1 {
		return
	}
	s.resize(len(s.slots)-1, preserve)
}

// Slot returns the value at pos, or a wildcard when pos is out of range.
func (s *State) Slot(pos int) Slot {
	if pos < 0 || pos >= len(s.slots) {
		return Slot{}
	}
	return s.slots[pos]
}

// Input normalizes raw and stores it at pos. Rejected input clears the slot.
func (s *State) Input(pos int, raw string) InputResult {
	if pos < 0 || pos >= len(s.slots) {
		return InputResult{Rejected: true}
	}
	value, err := NormalizeInput(raw)
	if err != nil {
		s.slots[pos] = Slot{}
		return InputResult{Rejected: true}
	}
	s.slots[pos] = value
	return InputResult{
		Value:   value,
		Advance: raw != "" && pos < len(s.slots)-1,
	}
}

// Clear resets the slot at pos to a wildcard.
func (s *State) Clear(pos int) {
	if pos < 0 || pos >= len(s.slots) {
		return
	}
	s.slots[pos] = Slot{}
}

// Reset clears every slot without changing the length.
func (s *State) Reset() {
	for i := range s.slots {
		s.slots[i] = Slot{}
	}
}

// CurrentPattern returns an immutable snapshot of the slots.
func (s *State) CurrentPattern() Pattern {
	return New(s.slots)
}

// NormalizeInput classifies a single typed character. A Unicode letter
// becomes an upper-case letter slot; space, '?' and empty input become a
// wildcard. Anything else, including multi-character input, is rejected.
func NormalizeInput(raw string) (Slot, error) {
	if raw == "" {
		return Slot{}, nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return Slot{}, errors.Wrapf(ErrInvalidCharacter, "%q is not a single character", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	switch {
	case r == ' ' || r == Wildcard:
		return Slot{}, nil
	case r == utf8.RuneError:
		return Slot{}, errors.Wrap(ErrInvalidCharacter, "invalid UTF-8")
	case unicode.IsLetter(r):
		return Letter(r), nil
	default:
		return Slot{}, errors.Wrapf(ErrInvalidCharacter, "%q is not a letter", raw)
	}
}
