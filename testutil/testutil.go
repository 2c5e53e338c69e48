// Package testutil provides testing utilities for the hash engine.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic input generation: the cyclic byte pattern
// the reference vectors are defined over, and seeded random splits for
// incremental-update tests.
package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// Pattern returns n bytes of the cyclic 0..250 pattern used by the
// reference test vectors: byte i is i % 251.
func Pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i % 251)
	}
	return p
}

// RNG is a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Fill fills p with random bytes.
func (r *RNG) Fill(p []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(p)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Splits cuts data into k contiguous sub-slices at random boundaries.
// The concatenation of the result is always exactly data.
func (r *RNG) Splits(data []byte, k int) [][]byte {
	r.mu.Lock()
	cuts := make([]int, 0, k-1)
	for i := 0; i < k-1; i++ {
		cuts = append(cuts, r.rand.Intn(len(data)+1))
	}
	r.mu.Unlock()

	sort.Ints(cuts)
	parts := make([][]byte, 0, k)
	prev := 0
	for _, c := range cuts {
		parts = append(parts, data[prev:c])
		prev = c
	}
	return append(parts, data[prev:])
}
