package places

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

// Create inserts a new place and fills in its ID.
func (r *Repository) Create(ctx context.Context, place *Place) error {
	query := `
        INSERT INTO places (name, category, lat, lng, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query,
		place.Name,
		place.Category,
		place.Lat,
		place.Lng,
		place.Description,
	).Scan(&place.ID); err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Place, error) {
	query := `
        SELECT id, name, category, lat, lng, description
        FROM places
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	list := []Place{}
	for rows.Next() {
		var p Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Lat, &p.Lng, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) GetByID(ctx context.Context, placeID int64) (*Place, error) {
	query := `
        SELECT id, name, category, lat, lng, description
        FROM places
        WHERE id = $1
    `
	var p Place
	err := r.db.QueryRow(ctx, query, placeID).Scan(&p.ID, &p.Name, &p.Category, &p.Lat, &p.Lng, &p.Description)
	if err != nil {
		return nil, dbx.NoRows(err)
	}
	return &p, nil
}

func (r *Repository) Exists(ctx context.Context, placeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM places WHERE id = $1)`, placeID).Scan(&exists)
	return exists, err
}

// Delete removes review photos, then reviews, then the place itself.
func (r *Repository) Delete(ctx context.Context, placeID int64) error {
	if _, err := r.db.Exec(ctx, `
        DELETE FROM review_photos
        WHERE review_id IN (SELECT id FROM reviews WHERE place_id = $1)
    `, placeID); err != nil {
		return fmt.Errorf("failed to delete review photos of place %d: %w", placeID, err)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE place_id = $1`, placeID); err != nil {
		return fmt.Errorf("failed to delete reviews of place %d: %w", placeID, err)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, placeID)
	if err != nil {
		return fmt.Errorf("failed to delete place %d: %w", placeID, err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}
