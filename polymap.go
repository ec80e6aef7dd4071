// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package polymap provides a recursively nested map whose keys may be of
// any of a fixed set of types and whose nodes each carry an optional
// value of any type.
//
//	m := polymap.New(polymap.KeyOf[int](), polymap.KeyOf[float64](), polymap.KeyOf[string]())
//	m.Index(1, 2, 3.1, "f").Set(199)
//	v, err := polymap.Get[int](m.Index(1, 2, 3.1, "f"))
//
// A Map is not safe for concurrent use.
package polymap

// Map is the root of a nested map. Unlike the nodes below it, the root
// has no value of its own: values live on nodes reached through at least
// one key.
type Map struct {
	root *Node
}

// New returns an empty map accepting keys of the given kinds. The order
// of kinds decides how keys of different types sort among siblings. It
// panics if no kinds are given or a type is declared twice.
func New(kinds ...KeyKind) *Map {
	return &Map{root: newNode(newKeySpace(kinds))}
}

// Index returns the node at the given path, creating missing nodes.
func (m *Map) Index(key any, keys ...any) *Node {
	return m.root.Index(key, keys...)
}

// At returns the existing node at the given path or a *KeyError.
func (m *Map) At(key any, keys ...any) (*Node, error) {
	return m.root.At(key, keys...)
}

// Contains reports whether the given path exists.
func (m *Map) Contains(key any, keys ...any) bool {
	return m.root.Contains(key, keys...)
}

// Children returns the top level mapping.
func (m *Map) Children() *Children {
	return &m.root.children
}

// First returns the top level node with the smallest key.
func (m *Map) First() (*Node, bool) {
	return m.root.First()
}

// Len returns the number of nodes in the map.
func (m *Map) Len() int {
	return m.root.Size()
}

// Size is an alias of Len.
func (m *Map) Size() int {
	return m.root.Size()
}

// Empty reports whether the map has no nodes.
func (m *Map) Empty() bool {
	return m.root.Empty()
}

// Clear removes every node.
func (m *Map) Clear() {
	m.root.Clear()
}

// ForEach visits every node, see Node.ForEach.
func (m *Map) ForEach(visit Visitor) {
	m.root.ForEach(visit)
}

// Walk is used to walk every node with its full path.
func (m *Map) Walk(fn WalkFn) {
	m.root.Walk(fn)
}

// Iterator returns a pre-order iterator over every node.
func (m *Map) Iterator() *Iterator {
	return m.root.Iterator()
}

// View returns a read-only handle on the map. Its value slot is always
// empty.
func (m *Map) View() View {
	return m.root.View()
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return &Map{root: m.root.Clone()}
}

func (m *Map) String() string {
	return m.root.String()
}
