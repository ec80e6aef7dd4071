// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// KeyKind describes one key type a Map accepts. The order in which kinds
// are passed to New ranks them: all keys of an earlier kind sort before
// all keys of a later one.
type KeyKind struct {
	typ     reflect.Type
	compare func(a, b any) int
}

// Type returns the concrete Go type of keys of this kind.
func (k KeyKind) Type() reflect.Type {
	return k.typ
}

// KeyOf returns the kind for an ordered key type. Numbers compare
// numerically and strings lexicographically.
func KeyOf[K constraints.Ordered]() KeyKind {
	return KeyFunc[K](cmp.Compare[K])
}

// KeyFunc returns the kind for key type K ordered by compare, which must
// return a negative number, zero or a positive number like cmp.Compare.
// K must be a concrete type, keys are matched by their dynamic type.
func KeyFunc[K any](compare func(a, b K) int) KeyKind {
	typ := reflect.TypeOf((*K)(nil)).Elem()
	if typ.Kind() == reflect.Interface {
		panic(fmt.Errorf("%w: interface type %v cannot be a key kind", ErrUnsupportedKey, typ))
	}
	if compare == nil {
		panic(fmt.Errorf("%w: nil comparison for %v", ErrUnsupportedKey, typ))
	}
	return KeyKind{
		typ: typ,
		compare: func(a, b any) int {
			return compare(a.(K), b.(K))
		},
	}
}

// key is a key tagged with the rank of its kind.
type key struct {
	rank int
	val  any
}

// keySpace is the closed set of kinds shared by every node of one map.
type keySpace struct {
	kinds []KeyKind
	rank  map[reflect.Type]int
}

func newKeySpace(kinds []KeyKind) *keySpace {
	if len(kinds) == 0 {
		panic(fmt.Errorf("%w: at least one key kind is required", ErrUnsupportedKey))
	}
	s := &keySpace{
		kinds: kinds,
		rank:  make(map[reflect.Type]int, len(kinds)),
	}
	for i, k := range kinds {
		if k.typ == nil {
			panic(fmt.Errorf("%w: zero KeyKind at position %d", ErrUnsupportedKey, i))
		}
		if _, dup := s.rank[k.typ]; dup {
			panic(fmt.Errorf("%w: key kind %v declared twice", ErrUnsupportedKey, k.typ))
		}
		s.rank[k.typ] = i
	}
	return s
}

// lookup tags k with its rank, reporting false for undeclared types.
func (s *keySpace) lookup(k any) (key, bool) {
	rank, ok := s.rank[reflect.TypeOf(k)]
	if !ok {
		return key{}, false
	}
	return key{rank: rank, val: k}, true
}

// mustLookup is lookup for paths that create nodes.
func (s *keySpace) mustLookup(k any) key {
	tagged, ok := s.lookup(k)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrUnsupportedKey, k))
	}
	return tagged
}

func (s *keySpace) compare(a, b key) int {
	if a.rank != b.rank {
		return cmp.Compare(a.rank, b.rank)
	}
	return s.kinds[a.rank].compare(a.val, b.val)
}
