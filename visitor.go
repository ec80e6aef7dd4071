// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

// Visitor is called by ForEach for every node of a subtree. It receives
// the node's key with its concrete type, so a type switch can dispatch on
// the key kind, the node's value slot, and the mapping the node belongs
// to. Returning false stops the traversal.
type Visitor func(key any, value *Value, siblings *Children) bool

// ForEach visits the subtree below n depth-first in pre-order: each child
// in key order, followed by that child's own subtree, before the next
// sibling.
//
// The visitor may modify siblings. After a child's subtree is done the
// traversal resumes at the first key greater than the child's, so keys
// added behind the current position are visited and keys added before it
// are not. A child dropped by the visitor is not descended into.
func (n *Node) ForEach(visit Visitor) {
	n.forEach(visit)
}

// forEach returns false once the visitor has asked to stop.
func (n *Node) forEach(visit Visitor) bool {
	c := &n.children
	for idx := 0; idx < len(c.entries); {
		e := c.entries[idx]
		if !visit(e.key.val, &e.node.value, c) {
			return false
		}
		if c.holds(e) && !e.node.forEach(visit) {
			return false
		}
		idx = c.upperBound(e.key)
	}
	return true
}
