package framework

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0, so that
// zero-valued configurations still produce reproducible runs.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the given seed. The same
// seed reproduces an identical run; seed==0 maps to defaultRNGSeed.
//
// math/rand.Rand is not goroutine-safe. All stochastic steps of the engine
// (sampling, crossover, mutation, tournaments) run on a single goroutine and
// share one generator; only side-effect-free objective evaluation fans out.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
