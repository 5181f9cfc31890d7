package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LevelDBStore_CRUD(t *testing.T) {
	store, err := NewMemStore()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	key := []byte{0x01, 'a'}
	_, err = store.Get(key)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(key, []byte("value")))
	value, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("value"), value)

	require.NoError(t, store.Delete(key))
	_, err = store.Get(key)
	require.ErrorIs(t, err, ErrKeyNotFound)

	// deleting a missing key is not an error
	require.NoError(t, store.Delete(key))
}

func Test_LevelDBStore_Iterate(t *testing.T) {
	store, err := NewMemStore()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	for _, kv := range []struct{ key, value string }{
		{"\x01b", "2"},
		{"\x02x", "9"},
		{"\x01a", "1"},
		{"\x01c", "3"},
	} {
		require.NoError(t, store.Set([]byte(kv.key), []byte(kv.value)))
	}

	t.Run("prefix bounds the walk", func(t *testing.T) {
		var keys, values []string
		err := store.Iterate([]byte{0x01}, func(key, value []byte) error {
			keys = append(keys, string(key))
			values = append(values, string(value))
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"\x01a", "\x01b", "\x01c"}, keys)
		require.Equal(t, []string{"1", "2", "3"}, values)
	})

	t.Run("empty prefix walks everything", func(t *testing.T) {
		var keys []string
		err := store.Iterate(nil, func(key, value []byte) error {
			keys = append(keys, string(key))
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"\x01a", "\x01b", "\x01c", "\x02x"}, keys)
	})

	t.Run("callback error stops the walk", func(t *testing.T) {
		errStop := errors.New("stop")
		var count int
		err := store.Iterate([]byte{0x01}, func(key, value []byte) error {
			count++
			return errStop
		})
		require.ErrorIs(t, err, errStop)
		require.Equal(t, 1, count)
	})
}

func Test_LevelDBStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.db")

	store, err := NewLevelDBStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set([]byte("k"), []byte("v")))
	require.NoError(t, store.Close())

	store, err = NewLevelDBStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	value, err := store.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)
}

func Test_LevelDBStore_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-db")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := NewLevelDBStore(path)
	require.ErrorContains(t, err, "opening leveldb at")
}
