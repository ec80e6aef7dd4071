// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

// WalkFn is used when walking the map. Takes the path of keys leading to
// a node and the node's value, returning if iteration should be
// terminated. The path slice is reused between calls; copy it to keep it.
type WalkFn func(path []any, value *Value) bool

// Walk is used to walk the subtree below n in the same order as ForEach.
func (n *Node) Walk(fn WalkFn) {
	recursiveWalk(n, make([]any, 0, 8), fn)
}

// recursiveWalk is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk(n *Node, prefix []any, fn WalkFn) bool {
	for _, e := range n.children.entries {
		p := append(prefix, e.key.val)
		if fn(p, &e.node.value) {
			return true
		}
		if recursiveWalk(e.node, p, fn) {
			return true
		}
	}
	return false
}
