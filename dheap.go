// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dheap provides an array-backed d-ary heap, that is, a binary
// heap generalized to an arbitrary branching factor. The heap is stored
// implicitly, in level order, in a single slice and every operation is
// expressed as index arithmetic over that slice; there are no nodes or
// pointers. The default branching factor of 2 yields the familiar
// binary heap.
//
// Heaps are not safe for concurrent use; callers that share a heap
// across goroutines must provide their own mutual exclusion.
package dheap

import (
	"cmp"
	"fmt"
)

// Order determines whether the root of the heap is the smallest or
// largest element it contains.
type Order bool

// Values for Order.
const (
	Min Order = false
	Max Order = true
)

// T represents a d-ary heap. Use New, NewFunc, FromSlice, FromSliceFunc,
// Heapify or HeapifyFunc to create one.
type T[V any] struct {
	values    []V
	cmp       func(a, b V) int
	order     Order
	branching int
}

// New returns an empty heap over a naturally ordered type.
func New[V cmp.Ordered](order Order, opts ...Option) (*T[V], error) {
	return NewFunc[V](order, cmp.Compare[V], opts...)
}

// NewFunc is like New but uses the supplied comparison function, which
// must return a negative number when a is less than b, zero when they
// are equal and a positive number when a is greater than b. The
// function must implement a total order over V and must not change for
// the lifetime of the heap.
func NewFunc[V any](order Order, cmp func(a, b V) int, opts ...Option) (*T[V], error) {
	var o options
	o.branching = DefaultBranchingFactor
	for _, fn := range opts {
		fn(&o)
	}
	if o.branching < 1 {
		return nil, fmt.Errorf("branching factor %v: %w", o.branching, ErrBranchingFactor)
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	return &T[V]{
		values:    make([]V, 0, o.sliceCap),
		cmp:       cmp,
		order:     order,
		branching: o.branching,
	}, nil
}

// FromSlice returns a heap populated by pushing each element of values
// in turn. values is never modified; the elements are copied into the
// heap's own storage. Takes O(n log n) time.
func FromSlice[V cmp.Ordered](values []V, order Order, opts ...Option) (*T[V], error) {
	return FromSliceFunc(values, order, cmp.Compare[V], opts...)
}

// FromSliceFunc is like FromSlice but uses the supplied comparison
// function, as for NewFunc.
func FromSliceFunc[V any](values []V, order Order, cmp func(a, b V) int, opts ...Option) (*T[V], error) {
	h, err := NewFunc(order, cmp, opts...)
	if err != nil {
		return nil, err
	}
	if cap(h.values) < len(values) {
		h.values = make([]V, 0, len(values))
	}
	for _, v := range values {
		h.Push(v)
	}
	return h, nil
}

// Heapify returns a heap that adopts values as its storage, without
// copying, and reorders it in place to satisfy the heap property.
// The slice must not be used by the caller whilst the heap is in use.
// Takes O(n) time.
func Heapify[V cmp.Ordered](values []V, order Order, opts ...Option) (*T[V], error) {
	return HeapifyFunc(values, order, cmp.Compare[V], opts...)
}

// HeapifyFunc is like Heapify but uses the supplied comparison
// function, as for NewFunc.
func HeapifyFunc[V any](values []V, order Order, cmp func(a, b V) int, opts ...Option) (*T[V], error) {
	h, err := NewFunc(order, cmp, opts...)
	if err != nil {
		return nil, err
	}
	h.values = values
	// Sift down every internal node, starting at the parent of the last
	// element and working back to the root.
	n := len(values)
	for i := (n - 2) / h.branching; i >= 0; i-- {
		h.down(i, n)
	}
	return h, nil
}

// Len returns the number of elements currently in the heap.
func (h *T[V]) Len() int {
	return len(h.values)
}

// Cap returns the current capacity of the heap's underlying storage.
func (h *T[V]) Cap() int {
	return cap(h.values)
}

// BranchingFactor returns the branching factor the heap was created
// with.
func (h *T[V]) BranchingFactor() int {
	return h.branching
}

// Push adds v to the heap. Takes O(log n) time.
func (h *T[V]) Push(v V) {
	h.values = append(h.values, v)
	h.up(len(h.values) - 1)
}

// Peek returns the root of the heap without removing it, ie. the
// smallest element for a Min heap and the largest for a Max heap.
// It returns ErrEmpty if the heap is empty.
func (h *T[V]) Peek() (V, error) {
	if len(h.values) == 0 {
		var v V
		return v, ErrEmpty
	}
	return h.values[0], nil
}

// Pop removes and returns the root of the heap. It returns ErrEmpty if
// the heap is empty. Takes O(log n) time.
func (h *T[V]) Pop() (V, error) {
	if len(h.values) == 0 {
		var v V
		return v, ErrEmpty
	}
	n := len(h.values) - 1
	h.swap(0, n)
	h.down(0, n)
	v := h.values[n]
	h.values = h.values[:n]
	return v, nil
}

// String renders the heap's contents in level order.
func (h *T[V]) String() string {
	return fmt.Sprint(h.values)
}

// less reports whether the element at i belongs above the element at j,
// ie. i is smaller for a Min heap and larger for a Max heap.
func (h *T[V]) less(i, j int) bool {
	if h.order == Max {
		return h.cmp(h.values[i], h.values[j]) > 0
	}
	return h.cmp(h.values[i], h.values[j]) < 0
}

func (h *T[V]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *T[V]) up(j int) {
	for j > 0 {
		i := (j - 1) / h.branching // parent
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down restores the heap property for the subtree rooted at i0,
// considering only the first n elements of the storage. It returns
// true if any elements were moved.
func (h *T[V]) down(i0, n int) bool {
	i := i0
	for {
		first := i*h.branching + 1 // leftmost child
		if first >= n || first < 0 { // first < 0 after int overflow
			break
		}
		last := first + h.branching
		if last > n {
			last = n
		}
		// Chose the most extreme of the children; the strict comparison
		// retains the leftmost of any equal children.
		j := first
		for c := first + 1; c < last; c++ {
			if h.less(c, j) {
				j = c
			}
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
