package feedback

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

// Create inserts a new unread feedback message.
func (r *Repository) Create(ctx context.Context, fb *Feedback) error {
	query := `
        INSERT INTO feedback (name, contact, message, is_read)
        VALUES ($1, $2, $3, FALSE)
        RETURNING id, is_read, created_at
    `
	if err := r.db.QueryRow(ctx, query, fb.Name, fb.Contact, fb.Message).
		Scan(&fb.ID, &fb.IsRead, &fb.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Feedback, error) {
	query := `
        SELECT id, name, contact, message, is_read, created_at
        FROM feedback
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	list := []Feedback{}
	for rows.Next() {
		var fb Feedback
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.Contact, &fb.Message, &fb.IsRead, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		list = append(list, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) MarkRead(ctx context.Context, feedbackID int64) (*Feedback, error) {
	query := `
        UPDATE feedback
        SET is_read = TRUE
        WHERE id = $1
        RETURNING id, name, contact, message, is_read, created_at
    `
	var fb Feedback
	if err := r.db.QueryRow(ctx, query, feedbackID).
		Scan(&fb.ID, &fb.Name, &fb.Contact, &fb.Message, &fb.IsRead, &fb.CreatedAt); err != nil {
		return nil, dbx.NoRows(err)
	}
	return &fb, nil
}
