package testutil

import (
	"math/rand"
	"sync"

	"github.com/platewise/platewise/distance"
)

// RNG is a seeded, thread-safe random number generator. Tests share one
// RNG so a failing run can be reproduced from its seed.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates an RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float32 returns a pseudo-random number in [0,1).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in [0,1), locking once per call.
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// RandomEmbeddings generates n unit-length random embeddings of the given
// dimension. The same seed always yields the same embeddings.
func RandomEmbeddings(n, dimension int, seed int64) [][]float32 {
	rng := NewRNG(seed)

	out := make([][]float32, n)
	for i := range out {
		vec := make([]float32, dimension)
		rng.FillUniform(vec)
		out[i] = distance.NormalizeCopy(vec)
	}
	return out
}
