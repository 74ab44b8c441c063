package reviews

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

func (r *Repository) Create(ctx context.Context, review *Review) error {
	query := `
        INSERT INTO reviews (place_id, author_name, rating, text, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, status, created_at
    `
	err := r.db.QueryRow(ctx, query,
		review.PlaceID,
		review.AuthorName,
		review.Rating,
		review.Text,
		StatusPending,
	).Scan(&review.ID, &review.Status, &review.CreatedAt)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return dbx.ErrNotFound
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	review.Photos = []Photo{}
	return nil
}

func (r *Repository) AddPhoto(ctx context.Context, photo *Photo) error {
	query := `
        INSERT INTO review_photos (review_id, url)
        VALUES ($1, $2)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query, photo.ReviewID, photo.URL).Scan(&photo.ID); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return dbx.ErrNotFound
		}
		return fmt.Errorf("failed to insert review photo: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	query := `
        SELECT id, place_id, author_name, rating, text, status, created_at
        FROM reviews
        WHERE id = $1
    `
	var review Review
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID,
		&review.PlaceID,
		&review.AuthorName,
		&review.Rating,
		&review.Text,
		&review.Status,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, dbx.NoRows(err)
	}

	list := []Review{review}
	if err := r.attachPhotos(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *Repository) ListByPlace(ctx context.Context, placeID int64, status Status) ([]Review, error) {
	query := `
        SELECT id, place_id, author_name, rating, text, status, created_at
        FROM reviews
        WHERE place_id = $1 AND status = $2
        ORDER BY created_at DESC, id DESC
    `
	return r.list(ctx, query, placeID, status)
}

func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]Review, error) {
	query := `
        SELECT id, place_id, author_name, rating, text, status, created_at
        FROM reviews
        WHERE status = $1
        ORDER BY created_at DESC, id DESC
    `
	return r.list(ctx, query, status)
}

func (r *Repository) SetStatus(ctx context.Context, reviewID int64, status Status) (*Review, error) {
	result, err := r.db.Exec(ctx, `UPDATE reviews SET status = $1 WHERE id = $2`, status, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, dbx.ErrNotFound
	}
	return r.GetByID(ctx, reviewID)
}

func (r *Repository) Delete(ctx context.Context, reviewID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM review_photos WHERE review_id = $1`, reviewID); err != nil {
		return fmt.Errorf("failed to delete photos of review %d: %w", reviewID, err)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review %d: %w", reviewID, err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	list := []Review{}
	for rows.Next() {
		var review Review
		if err := rows.Scan(
			&review.ID,
			&review.PlaceID,
			&review.AuthorName,
			&review.Rating,
			&review.Text,
			&review.Status,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		list = append(list, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachPhotos(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachPhotos loads photos for every review in one query, ordered by photo id.
func (r *Repository) attachPhotos(ctx context.Context, list []Review) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		index[list[i].ID] = i
		list[i].Photos = []Photo{}
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, review_id, url
        FROM review_photos
        WHERE review_id = ANY($1)
        ORDER BY id ASC
    `, ids)
	if err != nil {
		return fmt.Errorf("failed to query review photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.ReviewID, &p.URL); err != nil {
			return fmt.Errorf("failed to scan review photo row: %w", err)
		}
		i := index[p.ReviewID]
		list[i].Photos = append(list[i].Photos, p)
	}
	return rows.Err()
}
