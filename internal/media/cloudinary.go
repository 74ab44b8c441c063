package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore keeps media in a Cloudinary account. URLs are the
// absolute secure URLs Cloudinary returns.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
	// root is prepended to every folder, e.g. "chebplace".
	root string
}

func NewCloudinaryStore(cloudinaryURL, root string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, root: strings.Trim(root, "/")}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, folder Folder, ownerID int64, file File) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:    path.Join(s.root, folder.Dir),
		PublicID:  objectName(folder, ownerID),
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStore) Remove(ctx context.Context, photoURL string) error {
	publicID, err := publicIDFromURL(photoURL)
	if err != nil {
		return fmt.Errorf("failed to extract public ID: %w", err)
	}

	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete photo from cloudinary: %w", err)
	}
	return nil
}

// publicIDFromURL turns
// https://res.cloudinary.com/demo/image/upload/v1712/chebplace/gallery_photos/gallery_1_x.jpg
// into chebplace/gallery_photos/gallery_1_x.
func publicIDFromURL(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	parts := strings.Split(parsedURL.Path, "/")
	for i, part := range parts {
		if part != "upload" || i+1 >= len(parts) {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 1 && isVersion(rest[0]) {
			rest = rest[1:]
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id)), nil
	}

	return "", errors.New("failed to extract public ID from URL")
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
