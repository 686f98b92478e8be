package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forslund/cgdb-kui/key"
	"github.com/forslund/cgdb-kui/kui"
	"github.com/forslund/cgdb-kui/kui/source"
	"github.com/forslund/cgdb-kui/kui/term"
)

func bytesOf(s string) []key.Token {
	toks := make([]key.Token, len(s))
	for i := range s {
		toks[i] = key.Token(s[i])
	}
	return toks
}

// TestTerminalLayerComposition is spec §8 scenario 6: a raw "ESC [ A"
// sequence arrives at terminal_keys, which resolves it to <UP>; with no
// user macro registered, the manager's GetKey returns that single token.
func TestTerminalLayerComposition(t *testing.T) {
	raw := source.NewChanSource(bytesOf("\x1b[A")...)
	m := New(raw, nil)

	tok, err := m.GetKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, term.Up, tok)
}

func TestUserMacroAppliesAfterTerminalTranslation(t *testing.T) {
	raw := source.NewChanSource(bytesOf("\x1b[A")...)
	m := New(raw, nil)

	ms := kui.NewMapSet(term.Symbolize)
	require.NoError(t, ms.Register("<UP>", "<DOWN>"))
	m.AddMapSet(ms)

	tok, err := m.GetKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, term.Down, tok)
}

func TestManagerPassesOrdinaryBytesThrough(t *testing.T) {
	raw := source.NewChanSource(bytesOf("x")...)
	m := New(raw, nil)

	tok, err := m.GetKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, key.Token('x'), tok)
}

func TestManagerCanGetKeyForwardsToUserContext(t *testing.T) {
	raw := source.NewChanSource()
	m := New(raw, nil)
	require.False(t, m.CanGetKey())
}

func TestManagerGetMapSetsForwardsUserSets(t *testing.T) {
	raw := source.NewChanSource()
	m := New(raw, nil)
	require.Empty(t, m.GetMapSets())

	ms := kui.NewMapSet(term.Symbolize)
	m.AddMapSet(ms)
	require.Len(t, m.GetMapSets(), 1)
}

func TestManagerCloseWithoutCloser(t *testing.T) {
	raw := source.NewChanSource()
	m := New(raw, nil)
	require.NoError(t, m.Close())
}
