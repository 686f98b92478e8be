package kui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forslund/cgdb-kui/key"
)

// asciiSymbolize is a minimal Symbolizer for tests that don't need <NAME>
// escape parsing — each byte of s becomes its own token.
func asciiSymbolize(s string) (key.Sequence, error) {
	toks := make([]key.Token, len(s))
	for i := 0; i < len(s); i++ {
		toks[i] = key.Token(s[i])
	}
	return key.NewSequence(toks...), nil
}

func feed(t *testing.T, ms *MapSet, input string) (state State) {
	t.Helper()
	ms.Reset()
	for i := 0; i < len(input); i++ {
		if ms.State() != StillLooking {
			break
		}
		require.NoError(t, ms.Update(key.Token(input[i]), i))
	}
	ms.Finalize()
	return ms.State()
}

func TestMapSetSortedNoDuplicates(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("b", "2"))
	require.NoError(t, ms.Register("a", "1"))
	require.NoError(t, ms.Register("c", "3"))

	maps := ms.GetMaps()
	require.Len(t, maps, 3)
	for i := 1; i < len(maps); i++ {
		require.Equal(t, -1, key.Cmp(maps[i-1].LiteralKey(), maps[i].LiteralKey()))
	}
}

func TestRegisterReplacesExistingKey(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("a", "1"))
	require.NoError(t, ms.Register("a", "2"))

	maps := ms.GetMaps()
	require.Len(t, maps, 1)
	require.Equal(t, "2", maps[0].OriginalValue())
}

func TestRegisterDeregisterRoundTrip(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("b", "2"))
	before := len(ms.GetMaps())

	require.NoError(t, ms.Register("a", "1"))
	require.NoError(t, ms.Deregister("a"))

	require.Len(t, ms.GetMaps(), before)
}

func TestDeregisterUnknownKeyIsNotPresent(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("a", "1"))
	err := ms.Deregister("z")
	require.ErrorIs(t, err, ErrNotPresent)
}

func TestResetEmptyMapSetIsNotFound(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	ms.Reset()
	require.Equal(t, NotFound, ms.State())
}

func TestPrefixVsExtension(t *testing.T) {
	// spec §8 scenario 1: register a -> X, abc -> Y; input "ad".
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("a", "X"))
	require.NoError(t, ms.Register("abc", "Y"))

	ms.Reset()
	require.NoError(t, ms.Update(key.Token('a'), 0))
	require.Equal(t, StillLooking, ms.State())
	require.True(t, ms.isFound)

	require.NoError(t, ms.Update(key.Token('d'), 1))
	ms.Finalize()
	require.Equal(t, Found, ms.State())
	require.Equal(t, "X", ms.FoundMap().OriginalValue())
}

func TestLongerWins(t *testing.T) {
	// spec §8 scenario 2: same maps, input "abc" -> Y.
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("a", "X"))
	require.NoError(t, ms.Register("abc", "Y"))

	state := feed(t, ms, "abc")
	require.Equal(t, Found, state)
	require.Equal(t, "Y", ms.FoundMap().OriginalValue())
}

func TestEmptyMapSetNeverFinds(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	ms.Reset()
	require.Equal(t, NotFound, ms.State())
}

func TestNoOpExpansionStillMatches(t *testing.T) {
	ms := NewMapSet(asciiSymbolize)
	require.NoError(t, ms.Register("a", "a"))
	state := feed(t, ms, "a")
	require.Equal(t, Found, state)
	require.Equal(t, key.Cmp(ms.FoundMap().LiteralKey(), ms.FoundMap().LiteralValue()), 0)
}
