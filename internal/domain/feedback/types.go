package feedback

import (
	"context"
	"time"
)

type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Create(ctx context.Context, fb *Feedback) error
	// List returns all feedback, newest first.
	List(ctx context.Context) ([]Feedback, error)
	MarkRead(ctx context.Context, feedbackID int64) (*Feedback, error)
}
