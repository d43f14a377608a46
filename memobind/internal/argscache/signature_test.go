package argscache_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/memobind_go/memobind/internal/argscache"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type holder struct {
	Items []int
}

func TestIdentical_Primitives(t *testing.T) {
	assert.True(t, argscache.Identical(nil, nil))
	assert.True(t, argscache.Identical(1, 1))
	assert.True(t, argscache.Identical("a", "a"))
	assert.False(t, argscache.Identical(1, 2))
	assert.False(t, argscache.Identical(nil, 0))
	assert.False(t, argscache.Identical(0, nil))

	// no coercion across types
	assert.False(t, argscache.Identical(1, int64(1)))
	assert.False(t, argscache.Identical(1, "1"))

	nan := math.NaN()
	assert.False(t, argscache.Identical(nan, nan))
}

func TestIdentical_Pointers(t *testing.T) {
	a := &point{X: 1}
	b := &point{X: 1}
	assert.True(t, argscache.Identical(a, a))
	assert.False(t, argscache.Identical(a, b), "distinct objects are never equal")

	var nilPtr *point
	assert.False(t, argscache.Identical(nilPtr, nil), "typed nil differs from untyped nil")
}

func TestIdentical_ValueStructs(t *testing.T) {
	assert.True(t, argscache.Identical(point{1, 2}, point{1, 2}))
	assert.False(t, argscache.Identical(point{1, 2}, point{2, 1}))
}

func TestIdentical_NonComparable(t *testing.T) {
	s := []int{1, 2, 3}
	assert.True(t, argscache.Identical(s, s))
	assert.False(t, argscache.Identical(s, []int{1, 2, 3}))
	assert.False(t, argscache.Identical(s, s[:2]))

	m := map[string]int{"a": 1}
	assert.True(t, argscache.Identical(m, m))
	assert.False(t, argscache.Identical(m, map[string]int{"a": 1}))

	f := func() {}
	assert.False(t, argscache.Identical(f, f))

	h := holder{Items: s}
	assert.False(t, argscache.Identical(h, h))
}

func TestIdentical_CyclicValues(t *testing.T) {
	type node struct {
		next *node
	}
	n := &node{}
	n.next = n
	assert.True(t, argscache.Identical(n, n))
	assert.False(t, argscache.Identical(n, &node{next: n}))
}

func TestSignature_Equal(t *testing.T) {
	ctx := &point{}
	base := argscache.NewSignature(ctx, []any{1, "two"})

	assert.True(t, base.Equal(argscache.NewSignature(ctx, []any{1, "two"})))
	assert.False(t, base.Equal(argscache.NewSignature(&point{}, []any{1, "two"})))
	assert.False(t, base.Equal(argscache.NewSignature(ctx, []any{1, "three"})))
	assert.False(t, base.Equal(argscache.NewSignature(ctx, []any{1})))
	assert.False(t, base.Equal(argscache.NewSignature(ctx, []any{1, "two", nil})))
}

func TestNewSignature_FlattensAndCopies(t *testing.T) {
	args := []any{1, 2}
	sig := argscache.NewSignature("ctx", args)
	assert.Equal(t, argscache.Signature{"ctx", 1, 2}, sig)

	args[0] = 99
	assert.Equal(t, 1, sig[1])

	assert.Equal(t, argscache.Signature{nil}, argscache.NewSignature(nil, nil))
}
