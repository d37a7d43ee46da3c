package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms
// before parts spill to disk (10MB).
const DefaultMaxMemory = 10 << 20

// spoolPrefix marks temp files created by this package. The committer only
// moves files carrying this prefix inside the system temp directory, so a
// crafted descriptor cannot be used to relocate arbitrary server files.
const spoolPrefix = "uploadkit-"

// TransportError is the transport-level upload error code reported by the
// request-handling layer, distinct from the pipeline's own validation.
type TransportError int

const (
	// TransportOK means the file arrived without a transport error.
	TransportOK TransportError = iota
	// TransportSizeExceeded means the upload exceeds the server size directive.
	TransportSizeExceeded
	// TransportPartial means the file was only partially uploaded.
	TransportPartial
	// TransportNoFile means no file arrived with the request.
	TransportNoFile
	// TransportNoTempDir means the server's temp directory for uploads is missing.
	TransportNoTempDir
	// TransportCannotWrite means the server could not write the upload to disk.
	TransportCannotWrite
	// TransportBlockedExtension means a server extension stopped the upload.
	TransportBlockedExtension
)

// Message returns the fixed human-readable message for the error code.
// Unrecognized codes map to a generic message.
func (e TransportError) Message() string {
	switch e {
	case TransportOK:
		return ""
	case TransportSizeExceeded:
		return "the uploaded file exceeds the maximum allowed size in the server configuration"
	case TransportPartial:
		return "the file was only partially uploaded"
	case TransportNoFile:
		return "no file was uploaded"
	case TransportNoTempDir:
		return "the temporary folder for uploads is missing"
	case TransportCannotWrite:
		return "failed to write the uploaded file to disk"
	case TransportBlockedExtension:
		return "the file upload was stopped by a server extension"
	default:
		return "unknown upload error"
	}
}

// FileDescriptor bundles everything the pipeline needs to know about one
// incoming file: the original client-supplied name, the temp file the bytes
// were spooled to, the reported byte size, and the transport error code.
// It is passed into the pipeline explicitly; the pipeline never reaches into
// ambient request state.
type FileDescriptor struct {
	OriginalName string
	TempPath     string
	Size         int64
	TransportErr TransportError
}

// FileTable maps multipart field names to their file descriptors, mirroring
// the request's file table.
type FileTable map[string]*FileDescriptor

// Cleanup removes any spooled temp files that were not moved by a commit.
// Safe to call after Commit; missing files are ignored.
func (t FileTable) Cleanup() {
	for _, fd := range t {
		if fd.TempPath != "" {
			_ = os.Remove(fd.TempPath)
		}
	}
}

// FilesFromRequest parses the request's multipart form and spools the first
// file of every field to a temp file, returning the resulting file table.
// Callers should defer FileTable.Cleanup to release temp files left behind
// by rejected uploads.
func FilesFromRequest(r *http.Request) (FileTable, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoMultipartForm, err)
		}
	}
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, ErrNoMultipartForm
	}

	files := make(FileTable, len(r.MultipartForm.File))
	for field, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		fd, err := spoolFileHeader(headers[0])
		if err != nil {
			files.Cleanup()
			return nil, err
		}
		files[field] = fd
	}
	return files, nil
}

// DescriptorFromReader spools the reader's content to a temp file and returns
// a descriptor for it. Useful for tests and non-HTTP callers.
func DescriptorFromReader(originalName string, r io.Reader) (*FileDescriptor, error) {
	return spool(originalName, r)
}

func spoolFileHeader(fh *multipart.FileHeader) (*FileDescriptor, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	return spool(fh.Filename, src)
}

func spool(originalName string, r io.Reader) (*FileDescriptor, error) {
	path := filepath.Join(os.TempDir(), spoolPrefix+uuid.NewString())

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	written, err := io.Copy(dst, r)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return &FileDescriptor{
		OriginalName: originalName,
		TempPath:     path,
		Size:         written,
	}, nil
}

// isSpooledUpload reports whether path points at a temp file this package
// created, the precondition for the commit move.
func isSpooledUpload(path string) bool {
	dir, name := filepath.Split(filepath.Clean(path))
	return filepath.Clean(dir) == filepath.Clean(os.TempDir()) && strings.HasPrefix(name, spoolPrefix)
}
