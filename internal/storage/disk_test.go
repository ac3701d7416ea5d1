package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_PutGetDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media/")
	require.NoError(t, err)
	ctx := context.Background()

	key := "gallery/user-1/123-abc.jpg"
	require.NoError(t, store.Put(ctx, key, "image/jpeg", []byte("jpeg-bytes")))

	data, err := os.ReadFile(filepath.Join(store.Root(), "gallery", "user-1", "123-abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	// Overwrites are refused.
	assert.Equal(t, ErrObjectExists, store.Put(ctx, key, "image/jpeg", []byte("other")))

	assert.Equal(t, "http://localhost:8080/media/gallery/user-1/123-abc.jpg", store.PublicURL(key))

	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(store.Root(), "gallery", "user-1", "123-abc.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing object is not an error.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestDiskStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "../outside.jpg", "image/jpeg", []byte("x")))
	assert.Error(t, store.Put(ctx, "/etc/passwd", "image/jpeg", []byte("x")))
	assert.Error(t, store.Delete(ctx, "../outside.jpg"))
}
