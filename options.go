// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dheap

// DefaultBranchingFactor is the branching factor used when
// WithBranchingFactor is not specified, ie. a binary heap.
const DefaultBranchingFactor = 2

type options struct {
	branching int
	sliceCap  int
}

// Option represents an option accepted by the constructors in this
// package.
type Option func(*options)

// WithBranchingFactor sets the maximum number of children each node in
// the heap may have. Values less than 1 cause construction to fail with
// ErrBranchingFactor.
func WithBranchingFactor(d int) Option {
	return func(o *options) {
		o.branching = d
	}
}

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's elements.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}
