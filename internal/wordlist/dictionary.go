package wordlist

import (
	"context"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Dictionary is an immutable word list indexed by rune length.
type Dictionary struct {
	lang  string
	words []string
	byLen map[int][]string
	min   int
	max   int
}

// New builds a dictionary from already normalized words. The slice is
// copied; order is preserved inside each length bucket.
func New(lang string, words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	d := &Dictionary{
		lang:  lang,
		words: append([]string(nil), words...),
		byLen: map[int][]string{},
	}
	for i, word := range d.words {
		n := utf8.RuneCountInString(word)
		if n == 0 {
			return nil, errors.Newf("word list entry %d is empty", i+1)
		}
		d.byLen[n] = append(d.byLen[n], word)
		if d.min == 0 || n < d.min {
			d.min = n
		}
		if n > d.max {
			d.max = n
		}
	}
	return d, nil
}

// Lang returns the dictionary language code.
func (d *Dictionary) Lang() string {
	return d.lang
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the entries in load order. Callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// WithLength returns the entries of exactly n runes. Callers must not modify it.
func (d *Dictionary) WithLength(n int) []string {
	return d.byLen[n]
}

// MinLength returns the length of the shortest entry.
func (d *Dictionary) MinLength() int {
	return d.min
}

// MaxLength returns the length of the longest entry.
func (d *Dictionary) MaxLength() int {
	return d.max
}

// Loader produces a dictionary from some backing source.
type Loader interface {
	Load(ctx context.Context) (*Dictionary, error)
}

// FileLoader loads a dictionary from a newline-delimited text file.
type FileLoader struct {
	Path string
	Lang string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context) (*Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words, err := LoadWords(l.Path, l.Lang)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", l.Path)
	}
	return New(l.Lang, words)
}
