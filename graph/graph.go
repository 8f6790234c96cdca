// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides deferred execution of tensor creation operations.
//
// This package implements the framework's graph execution mode using the
// decorator pattern. It wraps any backend: while the graph is building,
// operations are recorded as program nodes and return placeholder tensors;
// Run replays the program on the wrapped backend and fills the placeholders.
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/graph"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    g := graph.New(cpu.New())
//	    g.StartBuilding()
//
//	    x := tensor.Rand[float32](tensor.Shape{2, 3}, g) // placeholder
//
//	    if err := g.Run(); err != nil { // x now holds samples
//	        log.Fatal(err)
//	    }
//	}
package graph

import (
	"github.com/ember-ml/ember/internal/graph"
	"github.com/ember-ml/ember/internal/tensor"
)

// Backend is the deferred-execution decorator backend.
type Backend[B tensor.Backend] = graph.Backend[B]

// New creates a deferred-execution decorator around the given backend.
// The decorator starts in eager mode; call StartBuilding to defer operations.
//
// Example:
//
//	base := cpu.New()
//	g := graph.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return graph.New(backend)
}
