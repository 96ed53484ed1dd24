// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dheap

import (
	"cmp"
	"strings"
	"testing"
)

// Verify fails the test if the heap property does not hold for the
// entire tree rooted at index 0.
func (h *T[V]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *T[V]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.values)
	first := p*h.branching + 1
	for c := first; c < first+h.branching && c < n; c++ {
		if h.less(c, p) {
			t.Errorf("heap inconsistent: sub tree for %v ([%v] %v is ordered before [%v] %v)", p, c, h.values[c], p, h.values[p])
			return
		}
		h.verify(t, c)
	}
}

func TestValidateViolations(t *testing.T) {
	h := &T[int]{
		values:    []int{1, 5, 3, 4},
		cmp:       cmp.Compare[int],
		order:     Max,
		branching: 2,
	}
	err := h.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	// Both out of order children of the root must be reported, not just
	// the first encountered.
	if got, want := strings.Count(err.Error(), "heap inconsistent"), 2; got != want {
		t.Errorf("got %v, want %v: %v", got, want, err)
	}
	h.values = []int{5, 4, 3, 1}
	if err := h.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
