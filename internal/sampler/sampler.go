// Package sampler draws uniformly random, duplicate-free subsets of a question pool.
package sampler

import (
	"math/rand/v2"

	"quiz-deck/internal/domain"
)

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide math/rand/v2 generator, which is safe for concurrent use.
var DefaultSource Source = globalSource{}

// Shuffle returns a uniformly random permutation of items using DefaultSource.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(DefaultSource, items)
}

// ShuffleWith returns a uniformly random permutation of items drawn from src.
// items is copied first and never modified.
func ShuffleWith[T any](src Source, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// SelectRandom returns count items drawn without replacement from items, in random order.
// It fails with *domain.InvalidCountError when count is negative or larger than len(items).
func SelectRandom[T any](src Source, items []T, count int) ([]T, error) {
	if count < 0 || count > len(items) {
		return nil, &domain.InvalidCountError{Requested: count, Available: len(items)}
	}
	return ShuffleWith(src, items)[:count:count], nil
}

// Sampler binds a randomness source to question selection.
type Sampler struct {
	src Source
}

// New creates a Sampler. A nil src falls back to DefaultSource.
func New(src Source) *Sampler {
	if src == nil {
		src = DefaultSource
	}
	return &Sampler{src: src}
}

// Shuffle returns a random permutation of the pool as a Selection.
func (s *Sampler) Shuffle(pool domain.Pool) domain.Selection {
	return domain.Selection(ShuffleWith(s.src, pool))
}

// SelectRandom picks count questions from pool. Every subset of that size, and every ordering of it,
// is equally likely.
func (s *Sampler) SelectRandom(pool domain.Pool, count int) (domain.Selection, error) {
	selected, err := SelectRandom(s.src, pool, count)
	if err != nil {
		return nil, err
	}
	return domain.Selection(selected), nil
}
