package search

import (
	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/slotword/internal/pattern"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

// DisplayCap is the default maximum number of words a result shows.
const DisplayCap = 1000

// ErrDictionaryUnavailable is returned when no dictionary has been loaded.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Result summarizes one search.
type Result struct {
	Pattern string
	// Total is the exact number of matches before sampling.
	Total int
	// Shown holds the collated matches, sampled down to the cap when Sampled is set.
	Shown   []string
	Sampled bool
}

// Config configures an Engine. Zero values select defaults.
type Config struct {
	Cap     int
	Locale  string
	Sampler *Sampler
}

// Engine runs pattern searches. It keeps no per-search state beyond its
// sampler and cached collators.
type Engine struct {
	cap       int
	locale    string
	sampler   *Sampler
	collators map[string]*Collator
}

// New returns an engine. A non-positive cap selects DisplayCap and a nil
// sampler selects a time-seeded one.
func New(cfg Config) *Engine {
	e := &Engine{
		cap:       cfg.Cap,
		locale:    cfg.Locale,
		sampler:   cfg.Sampler,
		collators: map[string]*Collator{},
	}
	if e.cap <= 0 {
		e.cap = DisplayCap
	}
	if e.sampler == nil {
		e.sampler = NewSampler()
	}
	return e
}

// Cap returns the display cap.
func (e *Engine) Cap() int {
	return e.cap
}

// Search returns the words of dict matching p. A nil dict yields
// ErrDictionaryUnavailable rather than an empty result.
func (e *Engine) Search(p pattern.Pattern, dict *wordlist.Dictionary) (Result, error) {
	if dict == nil {
		return Result{}, ErrDictionaryUnavailable
	}
	if p.Len() < 1 {
		return Result{}, errors.Wrap(pattern.ErrInvalidLength, "pattern has no slots")
	}

	matches := Compile(p).Filter(dict.WithLength(p.Len()))
	res := Result{
		Pattern: p.String(),
		Total:   len(matches),
	}
	if res.Total > e.cap {
		matches = e.sampler.Sample(matches, e.cap)
		res.Sampled = true
	}
	e.collator(dict.Lang()).Sort(matches)
	res.Shown = matches
	return res, nil
}

func (e *Engine) collator(lang string) *Collator {
	locale := e.locale
	if locale == "" {
		locale = lang
	}
	c, ok := e.collators[locale]
	if !ok {
		c = NewCollator(locale)
		e.collators[locale] = c
	}
	return c
}
