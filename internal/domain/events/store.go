package events

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

func (r *Repository) Create(ctx context.Context, event *Event) error {
	query := `
        INSERT INTO events (title, date, short_info, cover_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	if err := r.db.QueryRow(ctx, query,
		event.Title,
		event.Date,
		event.ShortInfo,
		event.CoverURL,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Event, error) {
	query := `
        SELECT id, title, date, short_info, cover_url
        FROM events
        ORDER BY date ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	list := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.ShortInfo, &e.CoverURL); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) GetByID(ctx context.Context, eventID int64) (*Event, error) {
	query := `
        SELECT id, title, date, short_info, cover_url
        FROM events
        WHERE id = $1
    `
	var e Event
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&e.ID, &e.Title, &e.Date, &e.ShortInfo, &e.CoverURL); err != nil {
		return nil, dbx.NoRows(err)
	}
	return &e, nil
}

// Update overwrites every field of the event identified by event.ID.
func (r *Repository) Update(ctx context.Context, event *Event) error {
	query := `
        UPDATE events
        SET title = $1, date = $2, short_info = $3, cover_url = $4
        WHERE id = $5
    `
	result, err := r.db.Exec(ctx, query,
		event.Title,
		event.Date,
		event.ShortInfo,
		event.CoverURL,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, eventID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dbx.ErrNotFound
	}
	return nil
}
