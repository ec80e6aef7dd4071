// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package polymap

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

func randomPath(r *rand.Rand, maxDepth int) []any {
	depth := 1 + r.Intn(maxDepth)
	path := make([]any, depth)
	for i := range path {
		switch r.Intn(3) {
		case 0:
			path[i] = r.Intn(4)
		case 1:
			path[i] = float64(r.Intn(4)) / 2
		default:
			path[i] = string(rune('a' + r.Intn(4)))
		}
	}
	return path
}

func TestProperty_ContainsMatchesAt(t *testing.T) {
	t.Parallel()

	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	r := rand.New(rand.NewSource(seed))

	m := New(KeyOf[int](), KeyOf[float64](), KeyOf[string]())
	for i := 0; i < 200; i++ {
		p := randomPath(r, 5)
		m.Index(p[0], p[1:]...).Set(i)
	}

	size := m.Size()
	for i := 0; i < 2000; i++ {
		p := randomPath(r, 6)
		_, err := m.At(p[0], p[1:]...)
		require.Equal(t, err == nil, m.Contains(p[0], p[1:]...), "path %v", p)
		if err != nil {
			require.ErrorIs(t, err, ErrNotFound)
		}
	}
	require.Equal(t, size, m.Size())
}

func TestProperty_SizeGrowsByNewLinks(t *testing.T) {
	t.Parallel()

	m := New(KeyOf[string]())
	m.Index("base")

	grow := func(depth uint8) bool {
		d := int(depth%8) + 1
		path := make([]any, d)
		for i := range path {
			id, err := uuid.GenerateUUID()
			if err != nil {
				return false
			}
			path[i] = id
		}

		before := m.Size()
		n := m.Index("base").Index(path[0], path[1:]...)
		if m.Size() != before+d {
			return false
		}
		// Indexing the same path again creates nothing.
		return m.Index("base").Index(path[0], path[1:]...) == n && m.Size() == before+d
	}

	require.NoError(t, quick.Check(grow, nil))
}

func TestProperty_GetRoundTrip(t *testing.T) {
	t.Parallel()

	m := New(KeyOf[int]())

	roundTrip := func(k int, i int64, s string, f float64) bool {
		n := m.Index(k)

		n.Set(i)
		gotI, err := Get[int64](n)
		if err != nil || gotI != i {
			return false
		}
		if _, err := Get[int](n); err == nil {
			return false
		}

		n.Set(s)
		gotS, err := Get[string](n)
		if err != nil || gotS != s {
			return false
		}
		if _, err := Get[int64](n); err == nil {
			return false
		}

		n.Set(f)
		gotF, err := Get[float64](n)
		if err != nil || gotF != f {
			return false
		}
		_, err = Get[float32](n)
		return err != nil
	}

	require.NoError(t, quick.Check(roundTrip, nil))
}

func TestProperty_ClearRemovesDescendants(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	m := New(KeyOf[int](), KeyOf[float64](), KeyOf[string]())

	var paths [][]any
	for i := 0; i < 100; i++ {
		p := append([]any{"root"}, randomPath(r, 4)...)
		m.Index(p[0], p[1:]...)
		paths = append(paths, p)
	}
	m.Index("other", 1)

	m.Index("root").Clear()
	for _, p := range paths {
		require.False(t, m.Contains(p[0], p[1:]...), "path %v", p)
	}
	require.Equal(t, 0, m.Index("root").Size())
	require.True(t, m.Contains("other", 1))
	require.Equal(t, 3, m.Size())
}

func TestProperty_ForEachOrder(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	m := New(KeyOf[int](), KeyOf[float64](), KeyOf[string]())
	for i := 0; i < 300; i++ {
		p := randomPath(r, 4)
		m.Index(p[0], p[1:]...)
	}

	// Every node is visited once, and each level is in key order: the
	// sibling mapping handed to the visitor lists the keys in the same
	// order they are reached.
	visits := 0
	next := map[*Children]int{}
	m.ForEach(func(key any, _ *Value, siblings *Children) bool {
		visits++
		idx := next[siblings]
		require.Equal(t, siblings.Keys()[idx], key)
		next[siblings] = idx + 1
		return true
	})
	require.Equal(t, m.Size(), visits)
	for c, n := range next {
		require.Equal(t, c.Len(), n)
	}
}
