// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor random generation.
//
// The backend is stateless: every operation creates its own generator from
// the op's seed argument, so two calls with the same seed produce the same
// tensor and calls with seed 0 draw fresh entropy from the OS.
package cpu
