// Package weighted picks among candidates proportionally to their weight.
package weighted

import (
	"math"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Weighted is anything that carries a relative traffic share.
type Weighted interface {
	SelectionWeight() float64
}

// Rand is the source of randomness. *rand.Rand satisfies it, as do test
// doubles that replay fixed sequences.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() } //nolint:gosec // traffic split, not crypto

func (globalRand) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // traffic split, not crypto

// DefaultRand is backed by the goroutine-safe top-level math/rand/v2 source.
func DefaultRand() Rand {
	return globalRand{}
}

// Seeded returns a deterministic source. It is not safe for concurrent use.
func Seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // reproducible simulations
}

// Usable reports whether w may take part in a selection.
func Usable(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Pick selects one candidate with probability proportional to its weight.
// Candidates with non-positive or non-finite weights are ignored. It returns
// false only when no candidate is usable.
func Pick[T Weighted](rnd Rand, candidates []T) (T, bool) {
	eligible := lo.Filter(candidates, func(c T, _ int) bool {
		return Usable(c.SelectionWeight())
	})

	if len(eligible) == 0 {
		var zero T

		return zero, false
	}

	total := lo.SumBy(eligible, func(c T) float64 { return c.SelectionWeight() })
	r := rnd.Float64() * total

	for _, c := range eligible {
		r -= c.SelectionWeight()
		if r <= 0 {
			return c, true
		}
	}

	// Rounding left r marginally above zero.
	return eligible[len(eligible)-1], true
}

// Uniform selects one element with equal probability, ignoring weights.
func Uniform[T any](rnd Rand, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T

		return zero, false
	}

	return items[rnd.IntN(len(items))], true
}

// Option is a weighted wrapper for values that carry no weight themselves.
type Option[V any] struct {
	Value  V
	Weight float64
}

func (o Option[V]) SelectionWeight() float64 {
	return o.Weight
}
