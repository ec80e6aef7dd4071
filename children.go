// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"golang.org/x/exp/slices"
)

// Children is the ordered key to node mapping owned by a node. Entries
// are kept sorted by key so iteration is deterministic; nodes are held by
// pointer and never move when siblings are added.
type Children struct {
	space   *keySpace
	entries []entry
}

type entry struct {
	key  key
	node *Node
}

// search finds the position of k, or where it would be inserted.
func (c *Children) search(k key) (int, bool) {
	return slices.BinarySearchFunc(c.entries, k, func(e entry, k key) int {
		return c.space.compare(e.key, k)
	})
}

// upperBound returns the position of the first entry whose key is
// greater than k.
func (c *Children) upperBound(k key) int {
	idx, found := c.search(k)
	if found {
		idx++
	}
	return idx
}

// holds reports whether e is still attached to c.
func (c *Children) holds(e entry) bool {
	idx, found := c.search(e.key)
	return found && c.entries[idx].node == e.node
}

func (c *Children) find(k any) *Node {
	tagged, ok := c.space.lookup(k)
	if !ok {
		return nil
	}
	idx, found := c.search(tagged)
	if !found {
		return nil
	}
	return c.entries[idx].node
}

// Index returns the child for k, adding an empty one if k is absent.
// It panics if the type of k was not declared for the map.
func (c *Children) Index(k any) *Node {
	tagged := c.space.mustLookup(k)
	idx, found := c.search(tagged)
	if found {
		return c.entries[idx].node
	}
	child := newNode(c.space)
	c.entries = slices.Insert(c.entries, idx, entry{key: tagged, node: child})
	return child
}

// At returns the child for k or a *KeyError if there is none.
func (c *Children) At(k any) (*Node, error) {
	if n := c.find(k); n != nil {
		return n, nil
	}
	return nil, &KeyError{Path: []any{k}}
}

// Contains reports whether k is present.
func (c *Children) Contains(k any) bool {
	return c.find(k) != nil
}

// Len returns the number of entries.
func (c *Children) Len() int {
	return len(c.entries)
}

// Keys returns the keys in iteration order.
func (c *Children) Keys() []any {
	keys := make([]any, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key.val
	}
	return keys
}

// Clear drops every entry together with its subtree.
func (c *Children) Clear() {
	c.entries = nil
}

// size counts all nodes below this mapping.
func (c *Children) size() int {
	total := len(c.entries)
	for _, e := range c.entries {
		total += e.node.children.size()
	}
	return total
}
