package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.GetItem("clients")
	require.NoError(t, err)
	require.False(t, ok, "missing key must report ok=false")

	require.NoError(t, m.SetItem("clients", `[{"id":"c1"}]`))

	v, ok, err := m.GetItem("clients")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"c1"}]`, v)

	require.NoError(t, m.SetItem("clients", `[]`))
	v, _, _ = m.GetItem("clients")
	require.Equal(t, `[]`, v, "SetItem must overwrite")
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok, err := s.GetItem("transactions")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SetItem("transactions", `[{"id":"t1"}]`))

	v, ok, err := s.GetItem("transactions")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"t1"}]`, v)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.SetItem("credentials", `[1,2,3]`))

	s2, err := NewFileStore(dir)
	require.NoError(t, err)

	v, ok, err := s2.GetItem("credentials")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[1,2,3]`, v)
}
