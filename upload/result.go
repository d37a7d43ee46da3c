package upload

// Result is the outcome record of one commit. It is populated along exactly
// one terminal branch and never mutated afterward.
//
// Three terminal shapes exist:
//   - succeeded: Success is true and every success field is set
//   - rejected: Err is true with a user-facing ErrorMessage; the filesystem
//     was not touched
//   - system-failed: Commit returned a non-nil error instead of a Result;
//     the fault is infrastructure misconfiguration, not bad input
type Result struct {
	// Success reports that the file was moved into place. Mutually
	// exclusive with Err.
	Success bool `json:"success"`

	// Err reports a validation rejection or a late move failure.
	Err bool `json:"error"`

	// ErrorMessage is the user-facing reason when Err is set.
	ErrorMessage string `json:"error_message,omitempty"`

	// OriginalName is the client-supplied file name.
	OriginalName string `json:"original_name,omitempty"`

	// StoredName is the content-addressed on-disk name, <sha1-hex>.<ext>.
	StoredName string `json:"stored_name,omitempty"`

	// Size is the stored file size in bytes.
	Size int64 `json:"size,omitempty"`

	// Extension is the lowercased extension extracted from OriginalName.
	Extension string `json:"extension,omitempty"`

	// MIMEType is the content-sniffed MIME type, never the client header.
	MIMEType string `json:"mime_type,omitempty"`

	// AbsolutePath and RelativePath locate the stored file on disk and
	// relative to the store's base directory.
	AbsolutePath string `json:"absolute_path,omitempty"`
	RelativePath string `json:"relative_path,omitempty"`

	// PublicURL is non-empty only when the upload directory lives under the
	// public subtree.
	PublicURL string `json:"public_url,omitempty"`

	// Width and Height are non-zero only when the stored file is a
	// recognized raster image and the dimension probe succeeded.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// ThumbnailPath is set when thumbnail generation was requested and
	// succeeded for an image upload.
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
}

// rejected builds the terminal validation-rejection shape.
func rejected(originalName, message string) *Result {
	return &Result{
		Err:          true,
		ErrorMessage: message,
		OriginalName: originalName,
	}
}
