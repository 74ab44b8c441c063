// Package media stores uploaded images and hands back the public URL each
// file is reachable under. Files are stored verbatim.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Folder groups files of one kind. Dir is the sub-directory (or remote
// folder) and Prefix starts every generated filename.
type Folder struct {
	Dir    string
	Prefix string
}

var (
	ReviewPhotos  = Folder{Dir: "review_photos", Prefix: "review"}
	GalleryPhotos = Folder{Dir: "gallery_photos", Prefix: "gallery"}
)

const defaultExt = ".jpg"

// sniffLen is how much of the content is read to detect its type when the
// uploaded filename carries no extension.
const sniffLen = 3072

type File struct {
	// Name is the client supplied filename; only its extension is used.
	Name    string
	Content io.Reader
}

type Store interface {
	// Save persists the file and returns its public URL. ownerID is the id of
	// the review or gallery section the file belongs to.
	Save(ctx context.Context, folder Folder, ownerID int64, file File) (string, error)
	// Remove deletes a file previously returned by Save. Removing a file that
	// no longer exists is not an error.
	Remove(ctx context.Context, url string) error
}

// objectName builds "<prefix>_<ownerID>_<uuid>" without extension.
func objectName(folder Folder, ownerID int64) string {
	return fmt.Sprintf("%s_%d_%s", folder.Prefix, ownerID, uuid.NewString())
}

// extension picks the file extension from the uploaded name, falling back to
// the detected content type. The returned reader yields the full content.
func extension(file File) (string, io.Reader, error) {
	if ext := cleanExt(filepath.Ext(file.Name)); ext != "" {
		return ext, file.Content, nil
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	content := io.MultiReader(bytes.NewReader(head), file.Content)

	ext := cleanExt(mimetype.Detect(head).Extension())
	if ext == "" || ext == ".txt" {
		ext = defaultExt
	}
	return ext, content, nil
}

// cleanExt lower-cases ext and rejects anything that is not a short
// alphanumeric suffix.
func cleanExt(ext string) string {
	ext = strings.ToLower(ext)
	if len(ext) < 2 || len(ext) > 6 || ext[0] != '.' {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
