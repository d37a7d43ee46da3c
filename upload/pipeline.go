package upload

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// checkFieldPresence resolves the named field in the file table.
func (s *Session) checkFieldPresence() error {
	desc, ok := s.files[s.fieldName]
	if !ok || desc == nil {
		return fmt.Errorf("no file uploaded with field name: %s", s.fieldName)
	}
	s.desc = desc
	return nil
}

// extractExtension takes the lowercased suffix of the client-supplied name.
// No validation here; the extension may be empty.
func (s *Session) extractExtension() error {
	s.ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(s.desc.OriginalName), "."))
	return nil
}

// detectMIMEType sniffs the temp file's content. The client-declared header
// is never consulted; this is the authoritative MIME source for the
// cross-check. Unreadable files fall back to application/octet-stream.
func (s *Session) detectMIMEType() error {
	mtype, err := mimetype.DetectFile(s.desc.TempPath)
	if err != nil {
		s.mimeType = "application/octet-stream"
		return nil
	}
	if media, _, perr := mime.ParseMediaType(mtype.String()); perr == nil {
		s.mimeType = media
	} else {
		s.mimeType = mtype.String()
	}
	return nil
}

func (s *Session) checkAllowedExtensions() error {
	if len(s.allowed) == 0 {
		return nil
	}
	for _, allowed := range s.allowed {
		if strings.EqualFold(allowed, s.ext) {
			return nil
		}
	}
	return fmt.Errorf("invalid file type '%s'. Allowed types: %s", s.ext, strings.Join(s.allowed, ", "))
}

func (s *Session) crossCheckMIMEType() error {
	accepted, ok := AcceptedMIMETypes(s.ext)
	if !ok || slices.Contains(accepted, s.mimeType) {
		return nil
	}
	return fmt.Errorf("MIME type mismatch for extension '%s': expected %s, got %s",
		s.ext, strings.Join(accepted, " or "), s.mimeType)
}

func (s *Session) checkSizeCeiling() error {
	s.size = s.desc.Size
	if s.maxSize > 0 && s.size > s.maxSize {
		return fmt.Errorf("file size (%.2fMB) exceeds maximum allowed (%.2fMB)",
			toMegabytes(s.size), toMegabytes(s.maxSize))
	}
	return nil
}

func toMegabytes(n int64) float64 {
	return float64(n) / (1 << 20)
}
