// Package graph implements deferred execution using the decorator pattern.
//
// Backend[B] wraps any tensor.Backend. While building, operations are not
// executed: each one is recorded as a program node and returns a placeholder
// tensor whose buffer is filled later, when Run replays the program on the
// wrapped backend. Outside of building the decorator is transparent and every
// call executes eagerly, so the same creation code serves both execution
// modes.
//
// Usage:
//
//	g := graph.New(cpu.New())
//	g.StartBuilding()
//	out, _ := tensor.RandomUniform(g, tensor.Shape{2, 3}, tensor.Float32, 0, 1, 42)
//	// out holds zeros until the program runs
//	err := g.Run()
package graph

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// opKind identifies a recorded operation.
type opKind int

const (
	opUniform opKind = iota
	opNormal
	opRandInt
	opRandPerm
	opFill
	opCast
)

func (k opKind) String() string {
	switch k {
	case opUniform:
		return "uniform"
	case opNormal:
		return "gaussian"
	case opRandInt:
		return "randint"
	case opRandPerm:
		return "randperm"
	case opFill:
		return "fill"
	case opCast:
		return "cast"
	default:
		return "unknown"
	}
}

// node is one recorded operation together with its attributes and output
// placeholder. Replaying a node computes the real result on the inner backend
// and copies it into the placeholder, so tensors handed out during building
// become valid after Run.
type node struct {
	kind  opKind
	shape tensor.Shape
	dtype tensor.DataType

	low, high float64 // uniform bounds / fill value in low
	mean, std float64 // gaussian parameters
	ilow      int64   // randint bounds
	ihigh     int64
	n         int   // randperm size
	seed      int64 // op-level seed attribute

	input  *tensor.RawTensor // cast input (may itself be a placeholder)
	output *tensor.RawTensor // placeholder filled by Run
}

// Backend wraps an inner backend and adds deferred execution.
// Type parameter B must satisfy the tensor.Backend interface.
type Backend[B tensor.Backend] struct {
	inner    B
	nodes    []*node
	building bool
}

// Compile-time check that the decorator satisfies tensor.Backend.
var _ tensor.Backend = (*Backend[*tensor.MockBackend])(nil)

// New creates a deferred-execution decorator around the given backend.
// The decorator starts in eager mode; call StartBuilding to defer operations.
func New[B tensor.Backend](inner B) *Backend[B] {
	return &Backend[B]{
		inner: inner,
		nodes: make([]*node, 0, 16),
	}
}

// Inner returns the wrapped backend for direct access.
func (b *Backend[B]) Inner() B {
	return b.inner
}

// StartBuilding switches the decorator to deferred mode.
func (b *Backend[B]) StartBuilding() {
	b.building = true
}

// StopBuilding switches back to eager mode. Recorded nodes are kept.
func (b *Backend[B]) StopBuilding() {
	b.building = false
}

// IsBuilding reports whether operations are currently deferred.
func (b *Backend[B]) IsBuilding() bool {
	return b.building
}

// Len returns the number of recorded operations.
func (b *Backend[B]) Len() int {
	return len(b.nodes)
}

// Clear drops all recorded operations. Building state is preserved.
func (b *Backend[B]) Clear() {
	b.nodes = b.nodes[:0]
}

// Name returns the backend name.
func (b *Backend[B]) Name() string {
	return "Graph(" + b.inner.Name() + ")"
}

// Device returns the compute device of the wrapped backend.
func (b *Backend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// placeholder allocates the zeroed output tensor for a deferred node.
func (b *Backend[B]) placeholder(kind opKind, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, b.inner.Device())
	if err != nil {
		panic(fmt.Sprintf("graph: %s: failed to create placeholder: %v", kind, err))
	}
	return raw
}

// record appends a node and returns its placeholder output.
func (b *Backend[B]) record(n *node) *tensor.RawTensor {
	n.output = b.placeholder(n.kind, n.shape, n.dtype)
	b.nodes = append(b.nodes, n)
	return n.output
}

// RandomUniform defers or executes a uniform sampling node.
func (b *Backend[B]) RandomUniform(shape tensor.Shape, dtype tensor.DataType, low, high float64, seed int64) *tensor.RawTensor {
	if !b.building {
		return b.inner.RandomUniform(shape, dtype, low, high, seed)
	}
	return b.record(&node{
		kind:  opUniform,
		shape: shape.Clone(),
		dtype: dtype,
		low:   low,
		high:  high,
		seed:  seed,
	})
}

// RandomNormal defers or executes a gaussian sampling node.
func (b *Backend[B]) RandomNormal(shape tensor.Shape, dtype tensor.DataType, mean, std float64, seed int64) *tensor.RawTensor {
	if !b.building {
		return b.inner.RandomNormal(shape, dtype, mean, std, seed)
	}
	return b.record(&node{
		kind:  opNormal,
		shape: shape.Clone(),
		dtype: dtype,
		mean:  mean,
		std:   std,
		seed:  seed,
	})
}

// RandomInt defers or executes a discrete uniform sampling node.
func (b *Backend[B]) RandomInt(shape tensor.Shape, dtype tensor.DataType, low, high int64, seed int64) *tensor.RawTensor {
	if !b.building {
		return b.inner.RandomInt(shape, dtype, low, high, seed)
	}
	return b.record(&node{
		kind:  opRandInt,
		shape: shape.Clone(),
		dtype: dtype,
		ilow:  low,
		ihigh: high,
		seed:  seed,
	})
}

// RandomPerm defers or executes a permutation node.
func (b *Backend[B]) RandomPerm(n int, dtype tensor.DataType, seed int64) *tensor.RawTensor {
	if !b.building {
		return b.inner.RandomPerm(n, dtype, seed)
	}
	return b.record(&node{
		kind:  opRandPerm,
		shape: tensor.Shape{n},
		dtype: dtype,
		n:     n,
		seed:  seed,
	})
}

// Fill defers or executes a constant fill node.
func (b *Backend[B]) Fill(shape tensor.Shape, dtype tensor.DataType, value float64) *tensor.RawTensor {
	if !b.building {
		return b.inner.Fill(shape, dtype, value)
	}
	return b.record(&node{
		kind:  opFill,
		shape: shape.Clone(),
		dtype: dtype,
		low:   value,
	})
}

// Cast defers or executes a dtype conversion node.
// The input may be a placeholder produced by an earlier node; Run replays in
// program order, so it is filled by the time the cast executes.
func (b *Backend[B]) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if !b.building {
		return b.inner.Cast(x, dtype)
	}
	return b.record(&node{
		kind:  opCast,
		shape: x.Shape().Clone(),
		dtype: dtype,
		input: x,
	})
}

// Run replays the recorded program on the inner backend, filling every
// placeholder, and then clears the program. Building mode is left unchanged,
// mirroring the way a session executes a finalized program.
func (b *Backend[B]) Run() error {
	for i, n := range b.nodes {
		var result *tensor.RawTensor
		switch n.kind {
		case opUniform:
			result = b.inner.RandomUniform(n.shape, n.dtype, n.low, n.high, n.seed)
		case opNormal:
			result = b.inner.RandomNormal(n.shape, n.dtype, n.mean, n.std, n.seed)
		case opRandInt:
			result = b.inner.RandomInt(n.shape, n.dtype, n.ilow, n.ihigh, n.seed)
		case opRandPerm:
			result = b.inner.RandomPerm(n.n, n.dtype, n.seed)
		case opFill:
			result = b.inner.Fill(n.shape, n.dtype, n.low)
		case opCast:
			result = b.inner.Cast(n.input, n.dtype)
		default:
			return fmt.Errorf("graph: node %d: unknown op %d", i, n.kind)
		}
		if err := n.output.CopyFrom(result); err != nil {
			return fmt.Errorf("graph: node %d (%s): %w", i, n.kind, err)
		}
	}
	b.Clear()
	return nil
}
