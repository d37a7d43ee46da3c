// Package upload implements a validation-and-commit pipeline for single-file
// HTTP uploads landing on a local filesystem.
//
// The package takes a raw, untrusted multipart upload and turns it into either
// a file durably placed under a managed directory tree with a fully populated
// Result, or a rejected request with a user-facing reason and no filesystem
// mutation.
//
// The pipeline includes:
//   - Path sanitization of the destination directory against traversal
//   - A short-circuiting chain of checks: field presence, extension
//     allow-list, content-sniffed MIME cross-check, size ceiling
//   - Content-addressed storage names (SHA-1 of the file bytes), giving
//     deterministic deduplication of identical content
//   - Best-effort post-processing: image dimension probing and public URL
//     derivation for files under the public subtree
//
// Example usage:
//
//	import "github.com/dmitrymomot/uploadkit/upload"
//
//	store, err := upload.New(upload.Config{
//	    BaseDir: "/var/www/app",
//	    Dir:     "public/uploads",
//	    BaseURL: "https://example.com/",
//	})
//	if err != nil {
//	    return err
//	}
//
//	// In HTTP handler
//	files, err := upload.FilesFromRequest(r)
//	if err != nil {
//	    return err
//	}
//	defer files.Cleanup()
//
//	res, err := store.Upload(files).
//	    Field("avatar").
//	    AllowedTypes("jpg", "png").
//	    MaxSize(2 << 20).
//	    Commit(r.Context())
//	if err != nil {
//	    return err // infrastructure fault, surface as 5xx
//	}
//	if res.Err {
//	    // show res.ErrorMessage to the user
//	}
//
// Validation rejections are reported in-band on the Result and never mutate
// the filesystem. Infrastructure faults (the target directory cannot be
// created or is not writable) are returned as errors so callers can treat
// them as operator problems rather than form errors.
package upload
