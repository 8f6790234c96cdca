// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/ember-ml/ember/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends own the random-number kernels; the creation functions in this
// package validate and normalize arguments before dispatching here.
//
// Implementations:
//   - backend/cpu: Pure Go kernels
//   - backend/webgpu: GPU compute via WebGPU philox shaders
//
// Decorator backends for additional functionality:
//   - graph: deferred execution (wraps any backend)
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/tensor"
//	    "github.com/ember-ml/ember/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Randn[float32](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend
