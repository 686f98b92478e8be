package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	require.Equal(t, 0, Len(NewSequence()))
	require.Equal(t, 3, Len(NewSequence(1, 2, 3)))
	require.Equal(t, 2, Len(Sequence{5, 6}))
}

func TestCmpPrefixOrdersBefore(t *testing.T) {
	a := NewSequence(1, 2)
	b := NewSequence(1, 2, 3)
	require.Equal(t, -1, Cmp(a, b))
	require.Equal(t, 1, Cmp(b, a))
	require.Equal(t, 0, Cmp(a, a))
}

func TestCmpLexicographic(t *testing.T) {
	require.Equal(t, -1, Cmp(NewSequence(1, 2), NewSequence(1, 3)))
	require.Equal(t, 1, Cmp(NewSequence(2), NewSequence(1, 9)))
}

func TestCmpN(t *testing.T) {
	a := NewSequence(1, 2, 9)
	b := NewSequence(1, 2, 3)
	require.Equal(t, 0, CmpN(a, b, 2))
	require.NotEqual(t, 0, CmpN(a, b, 3))
}

func TestCmpNShortArgument(t *testing.T) {
	a := Sequence{1, 2}
	b := NewSequence(1, 2, 3)
	require.Equal(t, -1, CmpN(a, b, 3))
}
