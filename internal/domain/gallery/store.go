package gallery

import (
	"context"
	"fmt"

	"chebplace/internal/infra/dbx"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

func (r *Repository) CreateSection(ctx context.Context, section *Section) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO gallery_sections (name)
        VALUES ($1)
        RETURNING id
    `, section.Name).Scan(&section.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return dbx.ErrConflict
		}
		return fmt.Errorf("failed to insert gallery section: %w", err)
	}
	section.Photos = []Photo{}
	return nil
}

// EnsureSection relies on the unique index on gallery_sections.name. The no-op
// DO UPDATE makes RETURNING yield the existing row on conflict, so two
// concurrent uploads with a new name end up in the same section.
func (r *Repository) EnsureSection(ctx context.Context, name string) (*Section, error) {
	s := Section{Photos: []Photo{}}
	err := r.db.QueryRow(ctx, `
        INSERT INTO gallery_sections (name)
        VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name
    `, name).Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert gallery section: %w", err)
	}
	return &s, nil
}

func (r *Repository) RenameSection(ctx context.Context, sectionID int64, name string) (*Section, error) {
	result, err := r.db.Exec(ctx, `UPDATE gallery_sections SET name = $1 WHERE id = $2`, name, sectionID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, dbx.ErrConflict
		}
		return nil, fmt.Errorf("failed to rename gallery section: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, dbx.ErrNotFound
	}
	return r.GetSection(ctx, sectionID)
}

func (r *Repository) DeleteSection(ctx context.Context, sectionID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM gallery_photos WHERE section_id = $1`, sectionID); err != nil {
		return fmt.Errorf("failed to delete photos of section %d: %w", sectionID, err)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM gallery_sections WHERE id = $1`, sectionID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery section %d: %w", sectionID, err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}

func (r *Repository) GetSection(ctx context.Context, sectionID int64) (*Section, error) {
	s := Section{Photos: []Photo{}}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM gallery_sections WHERE id = $1`, sectionID).Scan(&s.ID, &s.Name)
	if err != nil {
		return nil, dbx.NoRows(err)
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, section_id, url
        FROM gallery_photos
        WHERE section_id = $1
        ORDER BY id ASC
    `, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.SectionID, &p.URL); err != nil {
			return nil, fmt.Errorf("failed to scan gallery photo row: %w", err)
		}
		s.Photos = append(s.Photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListSections(ctx context.Context) ([]Section, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM gallery_sections ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery sections: %w", err)
	}
	defer rows.Close()

	sections := []Section{}
	index := map[int64]int{}
	for rows.Next() {
		s := Section{Photos: []Photo{}}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan gallery section row: %w", err)
		}
		index[s.ID] = len(sections)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return sections, nil
	}

	photoRows, err := r.db.Query(ctx, `
        SELECT id, section_id, url
        FROM gallery_photos
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery photos: %w", err)
	}
	defer photoRows.Close()

	for photoRows.Next() {
		var p Photo
		if err := photoRows.Scan(&p.ID, &p.SectionID, &p.URL); err != nil {
			return nil, fmt.Errorf("failed to scan gallery photo row: %w", err)
		}
		if i, ok := index[p.SectionID]; ok {
			sections[i].Photos = append(sections[i].Photos, p)
		}
	}
	return sections, photoRows.Err()
}

func (r *Repository) AddPhoto(ctx context.Context, photo *Photo) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO gallery_photos (section_id, url)
        VALUES ($1, $2)
        RETURNING id
    `, photo.SectionID, photo.URL).Scan(&photo.ID)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return dbx.ErrNotFound
		}
		return fmt.Errorf("failed to insert gallery photo: %w", err)
	}
	return nil
}

func (r *Repository) DeletePhoto(ctx context.Context, photoID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gallery_photos WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery photo: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}
