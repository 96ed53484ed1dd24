// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dheap

import (
	"github.com/xlab/treeprint"
)

// TreeString renders the heap as the d-ary tree implied by its index
// arithmetic, one node per element. It is intended for diagnostics
// only; there is no parsing counterpart.
func (h *T[V]) TreeString() string {
	tree := treeprint.New()
	if len(h.values) > 0 {
		tree.SetValue(h.values[0])
		h.addChildren(tree, 0)
	}
	return tree.String()
}

func (h *T[V]) addChildren(node treeprint.Tree, i int) {
	first := i*h.branching + 1
	for c := first; c < first+h.branching && c < len(h.values); c++ {
		if c*h.branching+1 < len(h.values) {
			h.addChildren(node.AddBranch(h.values[c]), c)
			continue
		}
		node.AddNode(h.values[c])
	}
}
