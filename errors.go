// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFound is returned by checked access when a key of the
	// requested path does not exist.
	ErrNotFound = errors.New("polymap: key not found")

	// ErrTypeMismatch is returned by Get when the value slot is empty or
	// holds a value of another type.
	ErrTypeMismatch = errors.New("polymap: value type mismatch")

	// ErrUnsupportedKey is the panic value (wrapped) for keys whose type
	// was not declared when the map was created.
	ErrUnsupportedKey = errors.New("polymap: unsupported key type")
)

// KeyError reports the first missing key of a checked access.
type KeyError struct {
	// Path is the full path that was requested.
	Path []any
	// Depth is the index in Path of the missing key.
	Depth int
}

func (e *KeyError) Error() string {
	missing := e.Path[e.Depth]
	if len(e.Path) == 1 {
		return fmt.Sprintf("%v: %v (%T)", ErrNotFound, missing, missing)
	}
	return fmt.Sprintf("%v: %v (%T) at depth %d of path %v", ErrNotFound, missing, missing, e.Depth, e.Path)
}

func (e *KeyError) Unwrap() error {
	return ErrNotFound
}

// TypeError reports a failed typed read of a value slot. Got is nil when
// the slot was empty.
type TypeError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%v: slot is empty, want %v", ErrTypeMismatch, e.Want)
	}
	return fmt.Sprintf("%v: slot holds %v, want %v", ErrTypeMismatch, e.Got, e.Want)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
