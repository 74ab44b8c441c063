package media

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "static")
	require.NoError(t, err)
	return s
}

func TestLocalStore_SaveWritesFileAndReturnsPublicURL(t *testing.T) {
	s := newLocal(t)

	url, err := s.Save(context.Background(), ReviewPhotos, 7, File{Name: "IMG_01.JPG", Content: strings.NewReader("jpeg-bytes")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/review_photos/review_7_"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	rel := strings.TrimPrefix(url, "/static/")
	data, err := os.ReadFile(filepath.Join(s.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	entries, err := os.ReadDir(filepath.Join(s.Root(), ReviewPhotos.Dir))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
}

func TestLocalStore_NamesAreUnique(t *testing.T) {
	s := newLocal(t)
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		url, err := s.Save(context.Background(), GalleryPhotos, 1, File{Name: "a.png", Content: strings.NewReader("x")})
		require.NoError(t, err)
		assert.False(t, seen[url], "duplicate url %s", url)
		seen[url] = true
	}
}

func TestLocalStore_ExtensionFallbacks(t *testing.T) {
	s := newLocal(t)

	tests := []struct {
		name    string
		file    File
		wantExt string
	}{
		{"detected from content", File{Name: "upload", Content: bytes.NewReader(pngHeader)}, ".png"},
		{"unknown content", File{Name: "", Content: strings.NewReader("plain")}, ".jpg"},
		{"unsafe extension ignored", File{Name: "x.p/hp", Content: strings.NewReader("plain")}, ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := s.Save(context.Background(), GalleryPhotos, 3, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, filepath.Ext(url))
		})
	}
}

func TestLocalStore_ContentSurvivesSniffing(t *testing.T) {
	s := newLocal(t)
	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte("z"), 10_000)...)

	url, err := s.Save(context.Background(), GalleryPhotos, 2, File{Content: bytes.NewReader(payload)})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.Root(), filepath.FromSlash(strings.TrimPrefix(url, "/static/"))))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestLocalStore_Remove(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	url, err := s.Save(ctx, ReviewPhotos, 1, File{Name: "a.jpg", Content: strings.NewReader("x")})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, url))
	require.NoError(t, s.Remove(ctx, url), "removing twice is fine")

	assert.Error(t, s.Remove(ctx, "/elsewhere/a.jpg"))
	assert.Error(t, s.Remove(ctx, "/static/../etc/passwd"))
}

func TestLocalStore_SaveHonoursCancelledContext(t *testing.T) {
	s := newLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, ReviewPhotos, 1, File{Name: "a.jpg", Content: strings.NewReader("x")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712/chebplace/gallery_photos/gallery_1_ab.jpg", "chebplace/gallery_photos/gallery_1_ab"},
		{"https://res.cloudinary.com/demo/image/upload/review_photos/review_2_cd.png", "review_photos/review_2_cd"},
	}
	for _, tt := range tests {
		got, err := publicIDFromURL(tt.url)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := publicIDFromURL("https://example.com/no/marker.jpg")
	assert.Error(t, err)
}
