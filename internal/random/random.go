// Package random provides the pseudo-random number sources backing the
// tensor random kernels.
//
// Two generators are available: SysSource, a locked math/rand stream used by
// the CPU kernels, and Philox, a counter-based generator whose streams can be
// reproduced independently of call order (used by the GPU shaders).
// A seed of 0 always means "nondeterministic": the state is initialized from
// the operating system's entropy source.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the subset of rand.Rand the tensor kernels need. Implementations
// must be safe for use from a single goroutine; SysSource is safe for
// concurrent use.
type Source interface {
	// Seed resets the generator to a deterministic state.
	Seed(seed int64)

	// Uint64 returns a pseudo-random 64-bit value.
	Uint64() uint64

	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Float32 returns a pseudo-random number in [0.0, 1.0).
	Float32() float32

	// NormFloat64 returns a normally distributed float64 with
	// mean 0 and standard deviation 1.
	NormFloat64() float64

	// Int63n returns a pseudo-random number in [0, n). Panics if n <= 0.
	Int63n(n int64) int64

	// Perm returns a pseudo-random permutation of the integers [0, n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// SysSource wraps a math/rand generator behind a mutex so a single stream can
// be shared by concurrent tensor creations.
type SysSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ Source = (*SysSource)(nil)

// NewSource returns a SysSource seeded with the given seed.
// A seed of 0 draws the initial state from the OS entropy source.
func NewSource(seed int64) *SysSource {
	if seed == 0 {
		seed = SecureSeed()
	}
	return &SysSource{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // statistical sampling, not security
}

// Seed resets the stream to a deterministic state.
func (s *SysSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Seed(seed)
}

// Uint64 returns a pseudo-random 64-bit value.
func (s *SysSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Uint64()
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *SysSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Float32 returns a pseudo-random number in [0.0, 1.0).
func (s *SysSource) Float32() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float32()
}

// NormFloat64 returns a standard normal sample.
func (s *SysSource) NormFloat64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.NormFloat64()
}

// Int63n returns a pseudo-random number in [0, n). Panics if n <= 0.
func (s *SysSource) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Int63n(n)
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *SysSource) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (s *SysSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}

// SecureSeed returns a non-zero seed drawn from the OS's cryptographically
// secure random number generator.
func SecureSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("random: cannot read OS entropy source: %v", err))
	}
	seed := int64(binary.BigEndian.Uint64(buf[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
