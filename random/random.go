// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random exposes the pseudo-random sources backing the tensor
// random kernels, for callers that need raw sample streams or reproducible
// counter-based generators.
package random

import "github.com/ember-ml/ember/internal/random"

// Source is the generator interface used by the tensor random kernels.
type Source = random.Source

// SysSource is a locked math/rand stream, safe for concurrent use.
type SysSource = random.SysSource

// NewSource returns a SysSource seeded with the given seed.
// A seed of 0 draws the initial state from the OS entropy source.
func NewSource(seed int64) *SysSource {
	return random.NewSource(seed)
}

// Philox is the philox4x32-10 counter-based generator used by the GPU
// shaders. Streams are reproducible independently of call order and can be
// split into non-overlapping child streams.
type Philox = random.Philox

// NewPhilox returns a Philox generator keyed by seed.
// A seed of 0 draws the key from the OS entropy source.
func NewPhilox(seed int64) *Philox {
	return random.NewPhilox(seed)
}

// SecureSeed returns a non-zero seed drawn from the OS's cryptographically
// secure random number generator.
func SecureSeed() int64 {
	return random.SecureSeed()
}
