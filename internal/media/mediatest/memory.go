// Package mediatest provides an in-memory media.Store for tests.
package mediatest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"chebplace/internal/media"
)

var ErrInjected = errors.New("injected media failure")

type Store struct {
	mu    sync.Mutex
	files map[string][]byte
	seq   int

	// FailOnSave makes the n-th Save call (1-based, counted over the life of
	// the store) fail. Zero never fails.
	FailOnSave int
	saves      int
}

var _ media.Store = (*Store)(nil)

func New() *Store {
	return &Store{files: map[string][]byte{}}
}

func (s *Store) Save(ctx context.Context, folder media.Folder, ownerID int64, file media.File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	if s.FailOnSave > 0 && s.saves == s.FailOnSave {
		return "", ErrInjected
	}

	data, err := io.ReadAll(file.Content)
	if err != nil {
		return "", err
	}

	s.seq++
	url := fmt.Sprintf("/static/%s/%s_%d_%d.jpg", folder.Dir, folder.Prefix, ownerID, s.seq)
	s.files[url] = data
	return url, nil
}

func (s *Store) Remove(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, url)
	return nil
}

// URLs lists the stored files in sorted order.
func (s *Store) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.files))
	for u := range s.files {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

func (s *Store) Content(url string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[url]
	return data, ok
}
