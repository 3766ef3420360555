package search

import (
	"math/rand"
	"time"
)

// Sampler draws uniform random subsets. It is not safe for concurrent use.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler returns a Sampler seeded with the current time.
func NewSampler() *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSampler returns a deterministic Sampler.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// NewSamplerFrom wraps an existing random source.
func NewSamplerFrom(rnd *rand.Rand) *Sampler {
	return &Sampler{rnd: rnd}
}

// Sample returns n words chosen uniformly without replacement using a
// partial Fisher-Yates shuffle. The input slice is not modified. When
// n >= len(words) a shuffled copy of all words is returned.
func (s *Sampler) Sample(words []string, n int) []string {
	if n <= 0 {
		return nil
	}
	pool := append([]string(nil), words...)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + s.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
