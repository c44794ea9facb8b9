package kstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternerFetchDedup(t *testing.T) {
	in := NewInterner()
	a := in.Fetch([]byte("shared"))
	b := in.Fetch([]byte("shared"))
	require.Same(t, a, b, "Fetch of identical content should return the same pooled String")
	require.EqualValues(t, 2, a.RefCount(), "dedup'd Fetch should bump the shared String's refcount")
}

func TestInternerConcatEmptyIdentity(t *testing.T) {
	in := NewInterner()
	s := in.Fetch([]byte("abc"))

	left := in.Concat(Empty, s)
	require.Equal(t, "abc", string(left.Bytes()))

	right := in.Concat(s, Empty)
	require.Equal(t, "abc", string(right.Bytes()))
}

func TestInternerConcat(t *testing.T) {
	in := NewInterner()
	lhs := in.Fetch([]byte("abc"))
	rhs := in.Fetch([]byte("123"))
	got := in.Concat(lhs, rhs)
	require.Equal(t, "abc123", string(got.Bytes()))
}

func TestInternerRepeat(t *testing.T) {
	in := NewInterner()
	src := in.Fetch([]byte("-"))

	zero := in.Repeat(src, 0)
	require.Equal(t, "", string(zero.Bytes()))

	one := in.Repeat(src, 1)
	require.Equal(t, "-", string(one.Bytes()))

	five := in.Repeat(src, 5)
	require.Equal(t, "-----", string(five.Bytes()))
}

func TestInternerSubstring(t *testing.T) {
	in := NewInterner()
	owner := in.Fetch([]byte("hello world"))
	sub := in.Substring(owner, 0, 5)
	require.Equal(t, "hello", string(sub.Bytes()))

	empty := in.Substring(owner, 3, 0)
	require.Equal(t, "", string(empty.Bytes()))
}

func TestInternerPrewarmedLiterals(t *testing.T) {
	in := NewInterner()
	require.Same(t, True, in.Fetch([]byte("true")))
	require.Same(t, Null, in.Fetch([]byte("null")))
	require.Same(t, Empty, in.Fetch([]byte("")))
}
