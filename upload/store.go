package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the store settings. Values map to environment variables so
// the struct can be filled by a config loader.
type Config struct {
	// BaseDir is the application root all upload directories live under.
	BaseDir string `env:"UPLOAD_BASE_DIR" envDefault:"."`
	// Dir is the default relative upload directory used when a session does
	// not override it.
	Dir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	// BaseURL is the public base URL files under the public subtree are
	// served from.
	BaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/"`
	// MaxSize is the default size ceiling in bytes, zero for no ceiling.
	MaxSize int64 `env:"UPLOAD_MAX_SIZE" envDefault:"0"`
}

// Store manages a local directory tree of content-addressed uploads.
// It is safe for concurrent use: sessions share no mutable state beyond the
// filesystem, directory creation tolerates races, and identical content maps
// to identical paths.
type Store struct {
	baseDir    string
	defaultDir string
	baseURL    string
	maxSize    int64
}

// New creates a store rooted at cfg.BaseDir. The base directory is resolved
// to an absolute path and created if missing; all later operations are
// confined under it.
func New(cfg Config) (*Store, error) {
	if cfg.BaseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	baseURL := cfg.BaseURL
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Store{
		baseDir:    absBaseDir,
		defaultDir: cfg.Dir,
		baseURL:    baseURL,
		maxSize:    cfg.MaxSize,
	}, nil
}

// Upload starts a single-use upload session over the given file table.
// Configure it with the chained setters, then call Commit exactly once.
func (s *Store) Upload(files FileTable) *Session {
	return &Session{
		store:   s,
		files:   files,
		maxSize: s.maxSize,
	}
}

// BaseDir returns the absolute root of the managed tree.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Entry describes a stored file or directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Exists checks whether a relative path exists under the managed tree.
func (s *Store) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// Delete removes a single stored file.
func (s *Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	return os.Remove(absPath)
}

// List returns the entries of a directory under the managed tree,
// non-recursive.
func (s *Store) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	absPath, err := s.resolvePath(dir)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{
			Name:  de.Name(),
			Path:  SanitizePath(dir) + de.Name(),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil && !de.IsDir() {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// URL returns the public URL for a relative path under the public subtree,
// or an empty string for private paths.
func (s *Store) URL(path string) string {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	rest := strings.TrimPrefix(path, "public/")
	if rest == path {
		return ""
	}
	return s.baseURL + rest
}

// resolvePath confines a relative path to the base directory, rejecting
// traversal attempts.
func (s *Store) resolvePath(path string) (string, error) {
	absPath := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if absPath != s.baseDir && !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return absPath, nil
}
