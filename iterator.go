// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

// Iterator walks a subtree in pre-order using an explicit stack. It yields
// nodes in the same order as ForEach. The map must not be modified while
// an iterator is in use.
type Iterator struct {
	stack []frame
	pos   *Node
}

type frame struct {
	path []any
	node *Node
}

// Iterator returns an iterator over the nodes below n.
func (n *Node) Iterator() *Iterator {
	it := &Iterator{}
	it.push(nil, n)
	return it
}

// push adds the children of n in reverse key order, so the smallest key
// is popped first.
func (i *Iterator) push(prefix []any, n *Node) {
	entries := n.children.entries
	for itr := len(entries) - 1; itr >= 0; itr-- {
		p := make([]any, len(prefix)+1)
		copy(p, prefix)
		p[len(prefix)] = entries[itr].key.val
		i.stack = append(i.stack, frame{path: p, node: entries[itr].node})
	}
}

// Front returns the node returned by the last call to Next.
func (i *Iterator) Front() *Node {
	return i.pos
}

// Next returns the path and value slot of the next node. The path is
// owned by the caller.
func (i *Iterator) Next() ([]any, *Value, bool) {
	if len(i.stack) == 0 {
		i.pos = nil
		return nil, nil, false
	}
	f := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.push(f.path, f.node)
	i.pos = f.node
	return f.path, &f.node.value, true
}
