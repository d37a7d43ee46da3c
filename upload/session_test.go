package upload_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadkit/upload"
)

func TestSession_FieldPresence(t *testing.T) {
	store := newStore(t)
	files := spoolFile(t, "document", "report.pdf", []byte("%PDF-1.4"))

	res, err := store.Upload(files).Field("avatar").Commit(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Err)
	assert.False(t, res.Success)
	assert.Equal(t, "no file uploaded with field name: avatar", res.ErrorMessage)
}

func TestSession_AllowedTypes(t *testing.T) {
	t.Run("disallowed extension rejected", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "malware.exe", []byte("MZ\x90\x00"))

		res, err := store.Upload(files).
			Field("file").
			AllowedTypes("jpg", "png").
			Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Err)
		assert.Contains(t, res.ErrorMessage, "invalid file type 'exe'")
		assert.Contains(t, res.ErrorMessage, "jpg, png")
	})

	t.Run("allowed extension passes", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "photo.jpg", jpegBytes(t, 4, 4))

		res, err := store.Upload(files).
			Field("file").
			AllowedTypes("jpg", "png").
			Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Success)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "PHOTO.JPG", jpegBytes(t, 4, 4))

		res, err := store.Upload(files).
			Field("file").
			AllowedTypes("jpg").
			Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Equal(t, "jpg", res.Extension)
	})
}

func TestSession_MIMESpoofDetection(t *testing.T) {
	store := newStore(t)
	// a "jpg" whose content is actually plain text
	files := spoolFile(t, "file", "photo.jpg", []byte("this is plain text, not an image"))

	res, err := store.Upload(files).Field("file").Commit(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Err)
	assert.Contains(t, res.ErrorMessage, "image/jpeg")
	assert.Contains(t, res.ErrorMessage, "text/plain")
}

func TestSession_UncoveredExtensionPassesCrossCheck(t *testing.T) {
	store := newStore(t)
	// "log" has no policy entry; the allow-list is the only gate for it
	files := spoolFile(t, "file", "server.log", []byte("2026-08-30 request served"))

	res, err := store.Upload(files).Field("file").Commit(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "log", res.Extension)
	assert.Equal(t, "text/plain", res.MIMEType)
}

func TestSession_SizeCeiling(t *testing.T) {
	t.Run("over the ceiling", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "big.txt", bytes.Repeat([]byte{'a'}, 3<<20))

		res, err := store.Upload(files).
			Field("file").
			MaxSize(2 << 20).
			Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Err)
		assert.Contains(t, res.ErrorMessage, "(3.00MB)")
		assert.Contains(t, res.ErrorMessage, "(2.00MB)")
	})

	t.Run("under the ceiling", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "small.txt", bytes.Repeat([]byte{'a'}, 1<<20))

		res, err := store.Upload(files).
			Field("file").
			MaxSize(2 << 20).
			Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.Equal(t, int64(1<<20), res.Size)
	})

	t.Run("no ceiling configured", func(t *testing.T) {
		store := newStore(t)
		files := spoolFile(t, "file", "big.txt", bytes.Repeat([]byte{'a'}, 3<<20))

		res, err := store.Upload(files).Field("file").Commit(context.Background())
		require.NoError(t, err)

		assert.True(t, res.Success)
	})
}

func TestSession_FirstErrorWins(t *testing.T) {
	store := newStore(t)
	// fails the allow-list (stage 4) AND the MIME cross-check (stage 5);
	// only the earlier stage's message may surface
	files := spoolFile(t, "file", "note.jpg", []byte("plain text pretending to be a jpeg"))

	res, err := store.Upload(files).
		Field("file").
		AllowedTypes("png").
		Commit(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Err)
	assert.Contains(t, res.ErrorMessage, "invalid file type 'jpg'")
	assert.NotContains(t, res.ErrorMessage, "mismatch")

	// nothing was committed
	entries, lerr := store.List(context.Background(), "uploads")
	require.NoError(t, lerr)
	assert.Empty(t, entries)
}

func TestSession_RejectionLeavesFilesystemUntouched(t *testing.T) {
	store := newStore(t)
	files := spoolFile(t, "file", "big.txt", bytes.Repeat([]byte{'b'}, 2<<20))

	res, err := store.Upload(files).
		Field("file").
		MaxSize(1 << 20).
		Commit(context.Background())
	require.NoError(t, err)
	require.True(t, res.Err)

	// temp file stays in place for the caller to clean up
	assert.FileExists(t, files["file"].TempPath)

	entries, err := store.List(context.Background(), "uploads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSession_TransportError(t *testing.T) {
	store := newStore(t)
	files := spoolFile(t, "file", "partial.txt", []byte("truncated"))
	files["file"].TransportErr = upload.TransportPartial

	res, err := store.Upload(files).Field("file").Commit(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Err)
	assert.Equal(t, "the file was only partially uploaded", res.ErrorMessage)

	// the move was short-circuited
	assert.FileExists(t, files["file"].TempPath)
	entries, err := store.List(context.Background(), "uploads")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSession_CancelledContext(t *testing.T) {
	store := newStore(t)
	files := spoolFile(t, "file", "note.txt", []byte("hello"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Upload(files).Field("file").Commit(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, directory permissions are not enforced")
	}

	base := t.TempDir()
	store, err := upload.New(upload.Config{BaseDir: base, Dir: "uploads", BaseURL: "/"})
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(base+"/frozen", 0555))

	files := spoolFile(t, "file", "note.txt", []byte("hello"))

	_, err = store.Upload(files).Field("file").Dir("frozen").Commit(context.Background())
	assert.ErrorIs(t, err, upload.ErrDirectoryNotWritable)
}
