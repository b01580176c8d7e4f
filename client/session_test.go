package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStores(t *testing.T) {
	stores := map[string]SessionStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "portal", "session.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok := store.Get(KeyAdminToken)
			assert.False(t, ok)

			require.NoError(t, store.Set(KeyAdminToken, "admin-tok"))
			require.NoError(t, store.Set(KeyAdminData, `{"id":1}`))
			require.NoError(t, store.Set(KeyToken, "user-tok"))

			v, ok := store.Get(KeyAdminToken)
			assert.True(t, ok)
			assert.Equal(t, "admin-tok", v)

			require.NoError(t, store.Clear(KeyAdminToken, KeyAdminData))
			_, ok = store.Get(KeyAdminToken)
			assert.False(t, ok)
			_, ok = store.Get(KeyToken)
			assert.True(t, ok, "unrelated keys survive a targeted clear")

			require.NoError(t, store.Clear())
			_, ok = store.Get(KeyToken)
			assert.False(t, ok)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileStore(path).Set(KeyAdminToken, "admin-tok"))

	v, ok := NewFileStore(path).Get(KeyAdminToken)
	assert.True(t, ok)
	assert.Equal(t, "admin-tok", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
