package upload

import (
	"context"
	"path/filepath"
)

// Session is a single-use, caller-owned upload session. Setters mutate
// internal state and return the session for chaining; Commit consumes the
// session and produces one Result. Re-invoking Commit on a consumed session
// is not supported.
type Session struct {
	store *Store
	files FileTable

	fieldName string
	dir       string
	allowed   []string
	maxSize   int64
	thumbW    int
	thumbH    int

	// populated by the pipeline, each write-once per session
	desc         *FileDescriptor
	ext          string
	mimeType     string
	size         int64
	dirRel       string
	targetDirAbs string
}

// Field sets the multipart field name the file is looked up under.
// Required before Commit.
func (s *Session) Field(name string) *Session {
	s.fieldName = name
	return s
}

// Dir overrides the store's default upload directory. The value is passed
// through SanitizePath before any use.
func (s *Session) Dir(dir string) *Session {
	s.dir = dir
	return s
}

// AllowedTypes restricts uploads to the given extensions, compared
// case-insensitively. No call, or an empty list, means no restriction.
func (s *Session) AllowedTypes(exts ...string) *Session {
	s.allowed = exts
	return s
}

// MaxSize sets the size ceiling in bytes, overriding the store default.
// Zero means no ceiling.
func (s *Session) MaxSize(n int64) *Session {
	s.maxSize = n
	return s
}

// WithThumbnail requests a post-commit thumbnail variant of the given
// bounding size for image uploads. Thumbnail failures never fail the upload.
func (s *Session) WithThumbnail(width, height int) *Session {
	s.thumbW = width
	s.thumbH = height
	return s
}

// Commit runs the full pipeline: path sanitization, directory preparation,
// validation, content addressing, and the commit move.
//
// A non-nil error is a system-tier fault (the target directory cannot be
// created or is not writable) and should be surfaced as a 5xx-class failure.
// Validation rejections and move failures are reported on the Result with
// a user-facing message; the filesystem is never mutated before validation
// completes clean.
func (s *Session) Commit(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := s.dir
	if dir == "" {
		dir = s.store.defaultDir
	}
	s.dirRel = SanitizePath(dir)
	s.targetDirAbs = filepath.Join(s.store.baseDir, filepath.FromSlash(s.dirRel))

	if err := prepareDirectory(s.targetDirAbs); err != nil {
		return nil, err
	}

	// Stages run in fixed order; the first error is the single terminal
	// rejection and short-circuits everything after it.
	stages := []func() error{
		s.checkFieldPresence,
		s.extractExtension,
		s.detectMIMEType,
		s.checkAllowedExtensions,
		s.crossCheckMIMEType,
		s.checkSizeCeiling,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return rejected(s.originalName(), err.Error()), nil
		}
	}

	return s.commit()
}

func (s *Session) originalName() string {
	if s.desc == nil {
		return ""
	}
	return s.desc.OriginalName
}
