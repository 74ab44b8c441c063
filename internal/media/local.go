package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes files under root and serves them under prefix, so a file
// saved to root/review_photos/x.jpg has the URL <prefix>/review_photos/x.jpg.
type LocalStore struct {
	root   string
	prefix string
}

func NewLocalStore(root, prefix string) (*LocalStore, error) {
	for _, f := range []Folder{ReviewPhotos, GalleryPhotos} {
		if err := os.MkdirAll(filepath.Join(root, f.Dir), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create media directory %s: %w", f.Dir, err)
		}
	}
	return &LocalStore{
		root:   root,
		prefix: "/" + strings.Trim(prefix, "/"),
	}, nil
}

func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) Prefix() string { return s.prefix }

// Save writes to a temporary file first and renames it into place, so a
// half-written file is never visible under its final name.
func (s *LocalStore) Save(ctx context.Context, folder Folder, ownerID int64, file File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext, content, err := extension(file)
	if err != nil {
		return "", err
	}

	name := objectName(folder, ownerID) + ext
	fullPath := filepath.Join(s.root, folder.Dir, name)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to sync media file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close media file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move media file into place: %w", err)
	}

	return path.Join(s.prefix, folder.Dir, name), nil
}

func (s *LocalStore) Remove(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.prefix+"/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("url %q is not served by this media store", url)
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
