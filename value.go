// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"reflect"
)

// Value is the slot every node carries. It holds at most one value of
// any type.
type Value struct {
	v   any
	set bool
}

// ValueReader is anything a typed value can be read from.
type ValueReader interface {
	// Any returns the stored value and whether there is one.
	Any() (any, bool)
}

// Set stores v, replacing the previous value whatever its type.
// Set(nil) empties the slot.
func (s *Value) Set(v any) {
	if v == nil {
		s.Reset()
		return
	}
	s.v = v
	s.set = true
}

// Reset empties the slot.
func (s *Value) Reset() {
	s.v = nil
	s.set = false
}

// Empty reports whether no value is stored.
func (s *Value) Empty() bool {
	return !s.set
}

func (s *Value) Any() (any, bool) {
	return s.v, s.set
}

// Type returns the dynamic type of the stored value, or nil if the slot
// is empty.
func (s *Value) Type() reflect.Type {
	if !s.set {
		return nil
	}
	return reflect.TypeOf(s.v)
}

// Get returns the value held by r as a T. The stored value must have
// exactly the type T: there are no numeric conversions and an interface T
// never matches, even if the stored value implements it.
func Get[T any](r ValueReader) (T, error) {
	var zero T
	want := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := r.Any()
	if !ok {
		return zero, &TypeError{Want: want}
	}
	if got := reflect.TypeOf(v); got != want {
		return zero, &TypeError{Want: want, Got: got}
	}
	return v.(T), nil
}
