// Package media stores uploaded post images on the local filesystem.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const postsDir = "posts"

// Store writes images under a root directory. References returned by
// SaveImage are slash-separated paths relative to that root.
type Store struct {
	root     string
	maxBytes int64
}

// NewStore creates a Store rooted at dir accepting files up to maxBytes.
func NewStore(dir string, maxBytes int64) *Store {
	return &Store{root: dir, maxBytes: maxBytes}
}

// SaveImage reads the upload, checks its size and sniffed content type and
// writes it as posts/<uuid><ext>. Non-image content and oversized files are
// reported as a validation error on the "image" field.
func (s *Store) SaveImage(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("media.SaveImage: read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", domain.NewValidationError("image", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", domain.NewValidationError("image", "upload a valid image; the file is not an image or is corrupted")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, postsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("media.SaveImage: create dir: %w", err)
	}

	name := uuid.New().String() + mtype.Extension()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("media.SaveImage: write file: %w", err)
	}

	return path.Join(postsDir, name), nil
}

// Remove deletes a stored image. Removing a missing file is not an error.
func (s *Store) Remove(ref string) error {
	clean := path.Clean("/" + ref)
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean))); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("media.Remove: %w", err)
	}
	return nil
}

// Root returns the directory references are relative to.
func (s *Store) Root() string {
	return s.root
}

// Ping reports whether the root exists and is a directory. It creates a
// missing root.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("media.Ping: %w", err)
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("media.Ping: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media.Ping: %s is not a directory", s.root)
	}
	return nil
}
