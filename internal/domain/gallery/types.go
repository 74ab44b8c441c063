package gallery

import "context"

// DefaultSection receives public uploads that do not name a section.
const DefaultSection = "general"

type Section struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Photos []Photo `json:"photos"`
}

type Photo struct {
	ID        int64  `json:"id"`
	SectionID int64  `json:"section_id"`
	URL       string `json:"url"`
}

type Store interface {
	// CreateSection fails with dbx.ErrConflict when the name is taken.
	CreateSection(ctx context.Context, section *Section) error
	// EnsureSection returns the section with this exact name, creating it in
	// the same statement when it does not exist yet.
	EnsureSection(ctx context.Context, name string) (*Section, error)
	RenameSection(ctx context.Context, sectionID int64, name string) (*Section, error)
	// DeleteSection removes the section's photos and then the section.
	DeleteSection(ctx context.Context, sectionID int64) error
	GetSection(ctx context.Context, sectionID int64) (*Section, error)
	// ListSections returns every section with its photos nested.
	ListSections(ctx context.Context) ([]Section, error)
	AddPhoto(ctx context.Context, photo *Photo) error
	DeletePhoto(ctx context.Context, photoID int64) error
}
