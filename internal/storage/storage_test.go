package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daykeep/daykeep/pkg/types"
)

// backends lists every BlobStore implementation under a constructor so the
// contract tests run identically against all of them.
func backends(t *testing.T) map[string]func(t *testing.T) BlobStore {
	return map[string]func(t *testing.T) BlobStore{
		"memory": func(t *testing.T) BlobStore {
			return NewMemStore()
		},
		"file": func(t *testing.T) BlobStore {
			return NewFileStore(t.TempDir())
		},
		"sqlite": func(t *testing.T) BlobStore {
			s, err := OpenSQLiteStore(t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func TestBlobStoreContract(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			t.Run("missing blob is absent not error", func(t *testing.T) {
				data, ok, err := store.Get("neverWritten")
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Nil(t, data)
			})

			t.Run("put then get round-trips", func(t *testing.T) {
				require.NoError(t, store.Put(BlobDayData, []byte(`{"2024-06-10":{}}`)))
				data, ok, err := store.Get(BlobDayData)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.JSONEq(t, `{"2024-06-10":{}}`, string(data))
			})

			t.Run("put replaces previous value", func(t *testing.T) {
				require.NoError(t, store.Put(BlobLastPopulatedDate, []byte(`"2024-06-10"`)))
				require.NoError(t, store.Put(BlobLastPopulatedDate, []byte(`"2024-06-11"`)))
				data, ok, err := store.Get(BlobLastPopulatedDate)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, `"2024-06-11"`, string(data))
			})

			t.Run("empty blob is stored and found", func(t *testing.T) {
				require.NoError(t, store.Put("empty", []byte{}))
				_, ok, err := store.Get("empty")
				require.NoError(t, err)
				assert.True(t, ok)
			})
		})
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	first := NewFileStore(dir)
	require.NoError(t, first.Put(BlobSchemaVersion, []byte("2")))
	require.NoError(t, first.Close())

	second := NewFileStore(dir)
	data, ok, err := second.Get(BlobSchemaVersion)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", string(data))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := OpenSQLiteStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(BlobSchemaVersion, []byte("2")))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(dir)
	require.NoError(t, err)
	defer second.Close()

	data, ok, err := second.Get(BlobSchemaVersion)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", string(data))
}

func TestOpenSelectsBackend(t *testing.T) {
	t.Run("file backend", func(t *testing.T) {
		store, err := Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
		require.NoError(t, err)
		defer store.Close()
		_, ok := store.(*FileStore)
		assert.True(t, ok)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		store, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		require.NoError(t, err)
		defer store.Close()
		_, ok := store.(*SQLiteStore)
		assert.True(t, ok)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		_, err := Open(types.Config{Backend: "redis"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})
}
