package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/uploadkit/pkg/imagemeta"
)

// publicPrefix marks the subtree whose files are directly browsable.
const publicPrefix = "public/"

// commit runs after the validation pipeline completed clean: transport error
// short-circuit, content addressing, the move, and best-effort
// post-processing.
func (s *Session) commit() (*Result, error) {
	if s.desc.TransportErr != TransportOK {
		return rejected(s.desc.OriginalName, s.desc.TransportErr.Message()), nil
	}

	storedName, err := ContentAddress(s.desc.TempPath, s.ext)
	if err != nil {
		return nil, err
	}

	targetRel := s.dirRel + storedName
	targetAbs := filepath.Join(s.targetDirAbs, storedName)

	if err := moveUploadedFile(s.desc.TempPath, targetAbs); err != nil {
		return &Result{
			Err:          true,
			ErrorMessage: fmt.Sprintf("failed to move uploaded file to %s", targetAbs),
			OriginalName: s.desc.OriginalName,
		}, nil
	}

	res := &Result{
		Success:      true,
		OriginalName: s.desc.OriginalName,
		StoredName:   storedName,
		Size:         s.size,
		Extension:    s.ext,
		MIMEType:     s.mimeType,
		AbsolutePath: targetAbs,
		RelativePath: targetRel,
	}

	// Post-processing is best effort: a failed probe or thumbnail is not a
	// failure of the overall upload.
	if imageExtensions[s.ext] {
		if w, h, err := imagemeta.Probe(targetAbs); err == nil {
			res.Width = w
			res.Height = h
			if s.thumbW > 0 && s.thumbH > 0 {
				thumb := thumbnailName(targetAbs, s.thumbW, s.thumbH)
				if err := imagemeta.Thumbnail(targetAbs, thumb, s.thumbW, s.thumbH); err == nil {
					res.ThumbnailPath = thumb
				}
			}
		}
	}

	if rest := strings.TrimPrefix(s.dirRel, publicPrefix); rest != s.dirRel {
		res.PublicURL = s.store.baseURL + rest + storedName
	}

	return res, nil
}

// prepareDirectory creates the target directory with safe permissions and
// verifies it accepts writes. "Already exists" is success; concurrent
// sessions racing on the same directory are benign. Failures here are
// infrastructure misconfiguration, not a bad upload.
func prepareDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	probe, err := os.CreateTemp(dir, ".writable-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDirectoryNotWritable, dir)
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	return nil
}

// moveUploadedFile moves a spooled temp file into its final location. The
// source must be a temp file this package created, so arbitrary server files
// cannot be relocated through a crafted descriptor. Rename is tried first;
// cross-device moves fall back to copy and remove.
func moveUploadedFile(src, dst string) error {
	if !isSpooledUpload(src) {
		return fmt.Errorf("%w: %s is not a spooled upload", ErrInvalidPath, src)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	_ = os.Remove(src)
	return nil
}

func thumbnailName(path string, w, h int) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + fmt.Sprintf("_%dx%d", w, h) + ext
}
