// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dheap

import "cmp"

// Sort sorts values in place using heapsort over a d-ary heap,
// ascending when ascending is true and descending otherwise. The
// branching factor may be set with WithBranchingFactor. Takes
// O(n log n) time and no additional space.
func Sort[V cmp.Ordered](values []V, ascending bool, opts ...Option) error {
	return SortFunc(values, ascending, cmp.Compare[V], opts...)
}

// SortFunc is like Sort but uses the supplied comparison function, as
// for NewFunc.
func SortFunc[V any](values []V, ascending bool, cmp func(a, b V) int, opts ...Option) error {
	// An ascending sort rotates the current maximum to the end of the
	// live range, so it needs a Max heap, and vice versa.
	order := Min
	if ascending {
		order = Max
	}
	h, err := HeapifyFunc(values, order, cmp, opts...)
	if err != nil {
		return err
	}
	for n := len(values) - 1; n > 0; n-- {
		h.swap(0, n)
		h.down(0, n)
	}
	return nil
}
