// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmpty is returned when a word list has no usable entries.
var ErrEmpty = errors.New("word list is empty")

// LoadWords reads one word per line from the provided file path.
func LoadWords(path, lang string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return Parse(file, FilterForLang(lang))
}

// Parse reads a newline-delimited word list. Lines are trimmed and
// lower-cased; empty lines and words rejected by filter are skipped.
func Parse(r io.Reader, filter FilterFunc) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		if filter != nil && !filter(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read word list")
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
