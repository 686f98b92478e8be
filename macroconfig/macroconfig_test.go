package macroconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forslund/cgdb-kui/kui"
	"github.com/forslund/cgdb-kui/kui/term"
)

func newMapSet() *kui.MapSet {
	return kui.NewMapSet(term.Symbolize)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	ms := newMapSet()
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ms)
	require.NoError(t, err)
	require.Empty(t, ms.GetMaps())
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.yaml")

	saved := newMapSet()
	require.NoError(t, saved.Register("<F2>", "gg"))
	require.NoError(t, saved.Register("jk", "<ESC>"))
	require.NoError(t, Save(path, saved))

	loaded := newMapSet()
	require.NoError(t, Load(path, loaded))

	require.Len(t, loaded.GetMaps(), 2)
	byKey := map[string]string{}
	for _, m := range loaded.GetMaps() {
		byKey[m.OriginalKey()] = m.OriginalValue()
	}
	require.Equal(t, "gg", byKey["<F2>"])
	require.Equal(t, "<ESC>", byKey["jk"])
}
