// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"reflect"
)

// View is a read-only handle on a node. Nothing reachable through a View
// can modify the map.
type View struct {
	n *Node
}

// ValueView is a read-only handle on a value slot.
type ValueView struct {
	v *Value
}

// ChildrenView is a read-only handle on a child mapping.
type ChildrenView struct {
	c *Children
}

// ViewVisitor is the read-only counterpart of Visitor.
type ViewVisitor func(key any, value ValueView, siblings ChildrenView) bool

// View returns a read-only handle on n.
func (n *Node) View() View {
	return View{n: n}
}

// At is the read-only form of Node.At.
func (v View) At(key any, keys ...any) (View, error) {
	n, err := v.n.At(key, keys...)
	if err != nil {
		return View{}, err
	}
	return View{n: n}, nil
}

func (v View) Contains(key any, keys ...any) bool {
	return v.n.Contains(key, keys...)
}

func (v View) Value() ValueView {
	return ValueView{v: &v.n.value}
}

func (v View) Any() (any, bool) {
	return v.n.value.Any()
}

func (v View) HasValue() bool {
	return v.n.HasValue()
}

func (v View) Children() ChildrenView {
	return ChildrenView{c: &v.n.children}
}

func (v View) Empty() bool {
	return v.n.Empty()
}

func (v View) Size() int {
	return v.n.Size()
}

func (v View) String() string {
	return v.n.String()
}

// ForEach runs the same traversal as Node.ForEach with read-only handles.
func (v View) ForEach(visit ViewVisitor) {
	v.n.ForEach(func(key any, value *Value, siblings *Children) bool {
		return visit(key, ValueView{v: value}, ChildrenView{c: siblings})
	})
}

func (vv ValueView) Empty() bool {
	return vv.v.Empty()
}

func (vv ValueView) Any() (any, bool) {
	return vv.v.Any()
}

func (vv ValueView) Type() reflect.Type {
	return vv.v.Type()
}

// At returns a view of the child for k or a *KeyError.
func (cv ChildrenView) At(k any) (View, error) {
	n, err := cv.c.At(k)
	if err != nil {
		return View{}, err
	}
	return View{n: n}, nil
}

func (cv ChildrenView) Contains(k any) bool {
	return cv.c.Contains(k)
}

func (cv ChildrenView) Len() int {
	return cv.c.Len()
}

func (cv ChildrenView) Keys() []any {
	return cv.c.Keys()
}
