package upload_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadkit/upload"
)

// newStore creates a store rooted at a fresh temp directory.
func newStore(t *testing.T) *upload.Store {
	t.Helper()

	store, err := upload.New(upload.Config{
		BaseDir: t.TempDir(),
		Dir:     "uploads",
		BaseURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)
	return store
}

// spoolFile spools content to a temp file and returns a single-entry file
// table keyed by field.
func spoolFile(t *testing.T, field, originalName string, content []byte) upload.FileTable {
	t.Helper()

	fd, err := upload.DescriptorFromReader(originalName, bytes.NewReader(content))
	require.NoError(t, err)

	files := upload.FileTable{field: fd}
	t.Cleanup(files.Cleanup)
	return files
}

// pngBytes encodes a solid width x height PNG.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// jpegBytes encodes a solid width x height JPEG.
func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}
