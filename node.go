// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"fmt"
	"strings"
)

// Node is one level of a Map. It owns an ordered set of child nodes and
// a value slot; either, both or neither may be populated.
//
// Nodes are created by Index and must not be copied by value.
type Node struct {
	children Children
	value    Value
}

func newNode(space *keySpace) *Node {
	return &Node{children: Children{space: space}}
}

// Index returns the node at the path key, keys..., creating every
// missing node on the way. It panics if a key's type was not declared
// for the map.
func (n *Node) Index(key any, keys ...any) *Node {
	cur := n.children.Index(key)
	for _, k := range keys {
		cur = cur.children.Index(k)
	}
	return cur
}

// At returns the existing node at the path key, keys.... The walk stops
// at the first missing key and returns a *KeyError wrapping ErrNotFound.
func (n *Node) At(key any, keys ...any) (*Node, error) {
	cur := n.children.find(key)
	if cur == nil {
		return nil, &KeyError{Path: path(key, keys), Depth: 0}
	}
	for i, k := range keys {
		if cur = cur.children.find(k); cur == nil {
			return nil, &KeyError{Path: path(key, keys), Depth: i + 1}
		}
	}
	return cur, nil
}

// Contains reports whether the full path resolves, without creating
// anything.
func (n *Node) Contains(key any, keys ...any) bool {
	_, err := n.At(key, keys...)
	return err == nil
}

// Set stores v in the node's value slot and returns the node.
func (n *Node) Set(v any) *Node {
	n.value.Set(v)
	return n
}

// Value returns the node's value slot.
func (n *Node) Value() *Value {
	return &n.value
}

func (n *Node) Any() (any, bool) {
	return n.value.Any()
}

// HasValue reports whether the value slot is populated.
func (n *Node) HasValue() bool {
	return !n.value.Empty()
}

// Children returns the node's child mapping.
func (n *Node) Children() *Children {
	return &n.children
}

// First returns the child with the smallest key.
func (n *Node) First() (*Node, bool) {
	if len(n.children.entries) == 0 {
		return nil, false
	}
	return n.children.entries[0].node, true
}

// Empty reports whether the node has no children. The value slot is not
// considered.
func (n *Node) Empty() bool {
	return len(n.children.entries) == 0
}

// Size returns the number of nodes below n.
func (n *Node) Size() int {
	return n.children.size()
}

// Clear removes every descendant. The node keeps its own value.
func (n *Node) Clear() {
	n.children.Clear()
}

// Clone returns a deep copy of the subtree rooted at n. Values are copied
// by assignment, so reference types stay shared.
func (n *Node) Clone() *Node {
	nc := &Node{
		children: Children{space: n.children.space},
		value:    n.value,
	}
	if len(n.children.entries) > 0 {
		nc.children.entries = make([]entry, len(n.children.entries))
		for i, e := range n.children.entries {
			nc.children.entries[i] = entry{key: e.key, node: e.node.Clone()}
		}
	}
	return nc
}

// String renders the subtree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.printTree(&sb, 0)
	return sb.String()
}

func (n *Node) printTree(sb *strings.Builder, depth int) {
	for _, e := range n.children.entries {
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(sb, "%v (%T)", e.key.val, e.key.val)
		if v, ok := e.node.value.Any(); ok {
			fmt.Fprintf(sb, " = %v", v)
		}
		sb.WriteByte('\n')
		e.node.printTree(sb, depth+1)
	}
}

func path(key any, keys []any) []any {
	p := make([]any, 0, len(keys)+1)
	p = append(p, key)
	return append(p, keys...)
}
