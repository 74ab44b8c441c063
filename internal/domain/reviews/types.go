package reviews

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

type Review struct {
	ID         int64     `json:"id"`
	PlaceID    int64     `json:"place_id"`
	AuthorName *string   `json:"author_name"`
	Rating     int       `json:"rating"` // 1-5
	Text       string    `json:"text"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	Photos     []Photo   `json:"photos"`
}

type Photo struct {
	ID       int64  `json:"id"`
	ReviewID int64  `json:"-"`
	URL      string `json:"url"`
}

type Store interface {
	// Create inserts the review as pending, regardless of review.Status.
	Create(ctx context.Context, review *Review) error
	AddPhoto(ctx context.Context, photo *Photo) error
	GetByID(ctx context.Context, reviewID int64) (*Review, error)
	ListByPlace(ctx context.Context, placeID int64, status Status) ([]Review, error)
	ListByStatus(ctx context.Context, status Status) ([]Review, error)
	SetStatus(ctx context.Context, reviewID int64, status Status) (*Review, error)
	// Delete removes the review's photos and then the review.
	Delete(ctx context.Context, reviewID int64) error
}
