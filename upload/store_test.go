package upload_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadkit/upload"
)

func TestNew(t *testing.T) {
	t.Run("creates the base directory", func(t *testing.T) {
		base := t.TempDir() + "/nested/base"

		store, err := upload.New(upload.Config{BaseDir: base, Dir: "uploads", BaseURL: "/"})
		require.NoError(t, err)

		assert.DirExists(t, store.BaseDir())
	})

	t.Run("empty base directory rejected", func(t *testing.T) {
		_, err := upload.New(upload.Config{})
		assert.ErrorIs(t, err, upload.ErrInvalidConfig)
	})
}

func TestStore_ExistsDeleteList(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	res, err := store.Upload(spoolFile(t, "file", "note.txt", []byte("hello"))).
		Field("file").
		Commit(ctx)
	require.NoError(t, err)
	require.True(t, res.Success)

	t.Run("exists", func(t *testing.T) {
		assert.True(t, store.Exists(ctx, res.RelativePath))
		assert.False(t, store.Exists(ctx, "uploads/missing.txt"))
	})

	t.Run("list", func(t *testing.T) {
		entries, err := store.List(ctx, "uploads")
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, res.StoredName, entries[0].Name)
		assert.Equal(t, "uploads/"+res.StoredName, entries[0].Path)
		assert.False(t, entries[0].IsDir)
		assert.Equal(t, int64(5), entries[0].Size)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, res.RelativePath))
		assert.False(t, store.Exists(ctx, res.RelativePath))

		err := store.Delete(ctx, res.RelativePath)
		assert.ErrorIs(t, err, upload.ErrFileNotFound)
	})

	t.Run("delete rejects directories", func(t *testing.T) {
		err := store.Delete(ctx, "uploads")
		assert.ErrorIs(t, err, upload.ErrInvalidPath)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		err := store.Delete(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, upload.ErrInvalidPath)
	})
}

func TestStore_URL(t *testing.T) {
	store := newStore(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "public path",
			path: "public/uploads/abc.png",
			want: "https://cdn.example.com/uploads/abc.png",
		},
		{
			name: "public path with leading slash",
			path: "/public/uploads/abc.png",
			want: "https://cdn.example.com/uploads/abc.png",
		},
		{
			name: "private path",
			path: "private/abc.png",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.URL(tt.path))
		})
	}
}
