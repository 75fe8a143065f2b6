package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"candidate-registry-backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingKey(t *testing.T) {
	store, err := kvstore.NewFile(t.TempDir())
	require.NoError(t, err)

	data, found, err := store.Load(context.Background(), "candidates_db")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestFileStoreSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.NewFile(dir)
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte(`[{"id":"CND-1-A"}]`)
	require.NoError(t, store.Save(ctx, "candidates_db", payload))

	data, found, err := store.Load(ctx, "candidates_db")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, data)

	// committed snapshot lands under the key's filename, no temp files left
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "candidates_db.json", entries[0].Name())
}

func TestFileStoreOverwriteReplacesSnapshot(t *testing.T) {
	store, err := kvstore.NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("first")))
	require.NoError(t, store.Save(ctx, "k", []byte("second")))

	data, found, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), data)
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := kvstore.NewFile(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStoreCopiesOnLoad(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("abc")))

	data, found, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)

	data[0] = 'x'

	again, _, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
