package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when a media file does not exist
	ErrNotFound = errors.New("media file not found")
	// ErrOutsideRoot is returned for paths escaping the media root
	ErrOutsideRoot = errors.New("path is outside the media root")
)

// FileSystem is the managed media file store rooted at a directory on disk
type FileSystem struct {
	root      string
	urlPrefix string
}

// New creates a media file system. urlPrefix is the public prefix of media URLs, e.g. "/media/".
func New(root, urlPrefix string) (*FileSystem, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &FileSystem{root: abs, urlPrefix: urlPrefix}, nil
}

// Root returns the absolute media root directory
func (fs *FileSystem) Root() string {
	return fs.root
}

// URL returns the public media URL of a media-relative path
func (fs *FileSystem) URL(rel string) string {
	rel = strings.TrimLeft(filepath.ToSlash(rel), "/")
	prefix := strings.Trim(fs.urlPrefix, "/")
	if prefix == "" {
		return "/" + rel
	}
	return "/" + prefix + "/" + rel
}

// GetRelativePath strips the media URL prefix or the absolute root from a path
func (fs *FileSystem) GetRelativePath(p string) string {
	p = strings.TrimSpace(p)
	if rel, err := filepath.Rel(fs.root, p); err == nil && filepath.IsAbs(p) && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}

	p = filepath.ToSlash(p)
	prefix := strings.Trim(fs.urlPrefix, "/")
	p = strings.TrimLeft(p, "/")
	if prefix != "" && (p == prefix || strings.HasPrefix(strings.ToLower(p), strings.ToLower(prefix)+"/")) {
		p = p[len(prefix):]
	}
	return strings.TrimLeft(p, "/")
}

// GetFullPath resolves a media-relative path to an absolute path under the root
func (fs *FileSystem) GetFullPath(rel string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(rel))
	full := filepath.Join(fs.root, filepath.FromSlash(clean))
	if full != fs.root && !strings.HasPrefix(full, fs.root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return full, nil
}

// FileExists reports whether a regular file exists at the media-relative path
func (fs *FileSystem) FileExists(rel string) bool {
	full, err := fs.GetFullPath(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// OpenFile opens a media file for reading
func (fs *FileSystem) OpenFile(rel string) (*os.File, error) {
	full, err := fs.GetFullPath(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", rel, ErrNotFound)
	}
	return f, err
}

// AddFile writes a media file, creating parent directories
func (fs *FileSystem) AddFile(rel string, r io.Reader) error {
	full, err := fs.GetFullPath(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write media file: %w", err)
	}
	return f.Close()
}

// DeleteFiles deletes media files, ignoring ones already gone
func (fs *FileSystem) DeleteFiles(paths []string) error {
	var errs []error
	for _, rel := range paths {
		full, err := fs.GetFullPath(rel)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			continue
		}
		if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DeleteDirectory removes an empty media directory.
// The error wraps os.ErrNotExist when the directory is gone.
func (fs *FileSystem) DeleteDirectory(rel string) error {
	full, err := fs.GetFullPath(rel)
	if err != nil {
		return err
	}
	if full == fs.root {
		return ErrOutsideRoot
	}
	return os.Remove(full)
}
