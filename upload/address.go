package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ContentAddress computes the content-derived stored name for the file at
// path: the hex SHA-1 digest of its bytes, followed by the extension. Two
// files with byte-identical content and the same extension always resolve to
// the identical stored name, deduplicating storage by content address.
// An empty extension yields the bare digest.
func ContentAddress(path, ext string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	h := sha1.New() //nolint:gosec // content addressing, not authentication
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToHashFile, err)
	}

	digest := hex.EncodeToString(h.Sum(nil))
	if ext == "" {
		return digest, nil
	}
	return digest + "." + ext, nil
}
