// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dheap

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmpty is returned by Pop and Peek when the heap contains no
	// elements.
	ErrEmpty = errors.New("heap is empty")

	// ErrBranchingFactor is returned by the constructors when the
	// requested branching factor is less than 1.
	ErrBranchingFactor = errors.New("branching factor must be at least 1")

	// ErrNilCompare is returned by the constructors when a nil
	// comparison function is supplied.
	ErrNilCompare = errors.New("comparison function must not be nil")
)

// Validate checks the heap property for every parent/child pair in the
// heap and returns an error describing every violation found, or nil if
// the heap is valid. It is intended for tests and diagnostics; none of
// the heap's operations call it.
func (h *T[V]) Validate() error {
	errs := errors.M{}
	for c := 1; c < len(h.values); c++ {
		p := (c - 1) / h.branching
		if h.less(c, p) {
			errs.Append(fmt.Errorf("heap inconsistent: [%v] %v is ordered before its parent [%v] %v", c, h.values[c], p, h.values[p]))
		}
	}
	return errs.Err()
}
