// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor creation for the Ember ML framework.
//
// # Overview
//
// This package is the user-facing surface of the framework's random
// generation layer. It provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Random creation operations (Rand, Randn, RandInt, RandPerm)
//   - Shape and dtype normalization with typed validation errors
//   - Device abstraction (CPU, WebGPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/tensor"
//	    "github.com/ember-ml/ember/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Rand[float32](tensor.Shape{2, 3}, backend)   // U[0, 1)
//	    y := tensor.Randn[float64](tensor.Shape{2, 3}, backend)  // N(0, 1)
//	    z, err := tensor.RandInt[int64](-5, 5, tensor.Shape{3}, backend)
//	    p, err := tensor.RandPerm[int32](10, backend)
//	}
//
// # Execution Modes
//
// Operations execute eagerly against a concrete backend. Wrapping a backend
// in graph.New defers them instead: each call records a program node and
// returns a placeholder that is filled when the program runs.
//
// # Supported Data Types
//
// rand and randn produce float32 or float64 tensors (default float32).
// randint produces int32 or int64 (default int64). randperm additionally
// accepts float32 and float64 outputs. Requesting any other data type
// returns an error wrapping ErrUnsupportedDType.
package tensor
