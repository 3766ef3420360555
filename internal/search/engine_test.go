package search

import (
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/slotword/internal/pattern"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

func mustDict(t *testing.T, lang string, words ...string) *wordlist.Dictionary {
	t.Helper()
	d, err := wordlist.New(lang, words)
	require.NoError(t, err)
	return d
}

func mustPattern(t *testing.T, s string) pattern.Pattern {
	t.Helper()
	p, err := pattern.Parse(s)
	require.NoError(t, err)
	return p
}

func TestSearchFixedFirstLetter(t *testing.T) {
	d := mustDict(t, "pl", "kot", "psy", "kij", "kos")
	e := New(Config{Sampler: NewSeededSampler(1)})

	res, err := e.Search(mustPattern(t, "k??"), d)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"kij", "kos", "kot"}, res.Shown)
	assert.False(t, res.Sampled)
	assert.Equal(t, "k??", res.Pattern)
}

func TestSearchAllWildcards(t *testing.T) {
	d := mustDict(t, "pl", "kot", "psy", "kij", "kos")
	e := New(Config{Sampler: NewSeededSampler(1)})

	res, err := e.Search(mustPattern(t, "???"), d)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []string{"kij", "kos", "kot", "psy"}, res.Shown)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	d := mustDict(t, "pl", "żółw", "żuraw", "żubr")
	e := New(Config{})

	res, err := e.Search(mustPattern(t, "ŻÓ?W"), d)
	require.NoError(t, err)
	assert.Equal(t, []string{"żółw"}, res.Shown)
}

func TestSearchAnchorsBothEnds(t *testing.T) {
	d := mustDict(t, "en", "cat", "cats", "scat", "at")
	e := New(Config{})

	res, err := e.Search(mustPattern(t, "?at"), d)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, res.Shown)
}

func TestSearchNoMatches(t *testing.T) {
	d := mustDict(t, "en", "cat")
	e := New(Config{})

	res, err := e.Search(mustPattern(t, "dog"), d)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Shown)
	assert.False(t, res.Sampled)
}

func TestSearchWithoutDictionary(t *testing.T) {
	e := New(Config{})
	_, err := e.Search(mustPattern(t, "k??"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDictionaryUnavailable))
}

func TestSearchEmptyPattern(t *testing.T) {
	e := New(Config{})
	_, err := e.Search(pattern.Pattern{}, mustDict(t, "en", "a"))
	assert.True(t, errors.Is(err, pattern.ErrInvalidLength))
}

func TestSearchUsesLanguageCollation(t *testing.T) {
	d := mustDict(t, "pl", "dom", "ćma", "cel", "łan", "lot", "mak")
	e := New(Config{})

	res, err := e.Search(mustPattern(t, "???"), d)
	require.NoError(t, err)
	assert.Equal(t, []string{"cel", "ćma", "dom", "lot", "łan", "mak"}, res.Shown)
}

func TestSearchKeepsDuplicates(t *testing.T) {
	d := mustDict(t, "en", "cat", "cat", "cot")
	e := New(Config{})

	res, err := e.Search(mustPattern(t, "c?t"), d)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"cat", "cat", "cot"}, res.Shown)
}

func threeLetterWords() []string {
	var words []string
	for a := 'a'; a <= 'z'; a++ {
		for b := 'a'; b <= 'z'; b++ {
			for c := 'a'; c <= 'd'; c++ {
				words = append(words, string([]rune{a, b, c}))
			}
		}
	}
	return words
}

func TestSearchSamplesAboveCap(t *testing.T) {
	words := threeLetterWords()
	d := mustDict(t, "en", words...)
	e := New(Config{Sampler: NewSeededSampler(42)})

	res, err := e.Search(mustPattern(t, "???"), d)
	require.NoError(t, err)
	assert.Equal(t, len(words), res.Total)
	assert.True(t, res.Sampled)
	require.Len(t, res.Shown, DisplayCap)

	all := map[string]bool{}
	for _, w := range words {
		all[w] = true
	}
	seen := map[string]bool{}
	for _, w := range res.Shown {
		assert.True(t, all[w], "fabricated %q", w)
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}
	assert.True(t, sort.StringsAreSorted(res.Shown))
	assert.NotEqual(t, words[:DisplayCap], res.Shown, "sample must not be the dictionary prefix")
}

func TestSearchSamplingIsReproducibleWithSeed(t *testing.T) {
	d := mustDict(t, "en", threeLetterWords()...)
	p := mustPattern(t, "???")

	first, err := New(Config{Sampler: NewSeededSampler(7)}).Search(p, d)
	require.NoError(t, err)
	second, err := New(Config{Sampler: NewSeededSampler(7)}).Search(p, d)
	require.NoError(t, err)
	assert.Equal(t, first.Shown, second.Shown)
}

func TestSearchCustomCap(t *testing.T) {
	d := mustDict(t, "en", "cat", "cot", "cut")
	e := New(Config{Cap: 2, Sampler: NewSeededSampler(3)})

	res, err := e.Search(mustPattern(t, "c?t"), d)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.True(t, res.Sampled)
	assert.Len(t, res.Shown, 2)
	assert.Equal(t, 2, e.Cap())
}

func TestSearchAtCapIsNotSampled(t *testing.T) {
	d := mustDict(t, "en", "cat", "cot")
	e := New(Config{Cap: 2})

	res, err := e.Search(mustPattern(t, "c?t"), d)
	require.NoError(t, err)
	assert.False(t, res.Sampled)
	assert.Equal(t, []string{"cat", "cot"}, res.Shown)
}

func TestSearchDoesNotMutateDictionary(t *testing.T) {
	d := mustDict(t, "en", "cot", "cat", "cut")
	e := New(Config{})

	_, err := e.Search(mustPattern(t, "c?t"), d)
	require.NoError(t, err)
	assert.Equal(t, []string{"cot", "cat", "cut"}, d.Words())
	assert.Equal(t, []string{"cot", "cat", "cut"}, d.WithLength(3))
}
