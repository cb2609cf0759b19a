package hydroponics

import "math/rand/v2"

// Source draws uniform values from [lo, hi].
type Source interface {
	Uniform(lo, hi float64) float64
}

type SourceFunc func(lo, hi float64) float64

func (f SourceFunc) Uniform(lo, hi float64) float64 {
	return f(lo, hi)
}

type randSource struct {
	r *rand.Rand
}

func NewRandSource(r *rand.Rand) Source {
	return randSource{r: r}
}

// NewSeededSource returns a reproducible source: the same seed yields the
// same drift sequence.
func NewSeededSource(seed uint64) Source {
	return NewRandSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s randSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
