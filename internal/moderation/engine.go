// Package moderation owns the review lifecycle. Visitors submit reviews that
// start out pending; only an authorized admin can approve them, and only
// approved reviews are ever returned on the public read path.
//
//	pending --ApproveReview--> approved
//
// approved is terminal. There is no reject transition; removing a review is
// a deletion, not a status change.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chebplace/internal/auth"
	"chebplace/internal/domain/reviews"
	"chebplace/internal/domain/storage"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/media"
	"chebplace/internal/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MaxPhotos is the number of files a single review may carry.
const MaxPhotos = 5

var ErrValidation = errors.New("validation failed")

type Config struct {
	// CacheSize is the number of places whose approved list is cached. Zero
	// disables the cache.
	CacheSize int
	CacheTTL  time.Duration
}

type Engine struct {
	store    storage.Store
	media    media.Store
	authz    auth.Authorizer
	validate *validator.Validate
	cache    *approvedCache
	logger   *zap.SugaredLogger
}

func New(store storage.Store, files media.Store, authz auth.Authorizer, logger *zap.SugaredLogger, cfg Config) *Engine {
	return &Engine{
		store:    store,
		media:    files,
		authz:    authz,
		validate: newValidator(),
		cache:    newApprovedCache(cfg.CacheSize, cfg.CacheTTL),
		logger:   logger,
	}
}

// Authorize checks an admin credential. Every admin-only operation calls it
// before touching the store.
func (e *Engine) Authorize(ctx context.Context, credential string) error {
	if err := e.authz.Validate(ctx, credential); err != nil {
		return auth.ErrUnauthorized
	}
	return nil
}

type ReviewInput struct {
	PlaceID    int64        `json:"place_id"`
	AuthorName *string      `json:"author_name" validate:"omitempty,max=100"`
	Rating     int          `json:"rating" validate:"min=1,max=5"`
	Text       string       `json:"text" validate:"required,max=5000"`
	Photos     []media.File `json:"photos" validate:"max=5"`
}

// SubmitReview stores a new pending review together with its photos. The
// review row, every file and every photo row are produced in one
// transaction; if anything fails nothing is committed and the files written
// so far are removed.
func (e *Engine) SubmitReview(ctx context.Context, in ReviewInput) (*reviews.Review, error) {
	in.Text = strings.TrimSpace(in.Text)
	if in.AuthorName != nil {
		name := strings.TrimSpace(*in.AuthorName)
		in.AuthorName = &name
		if name == "" {
			in.AuthorName = nil
		}
	}

	if err := e.validateInput(in); err != nil {
		metrics.ReviewRejected("validation")
		return nil, err
	}

	var (
		review *reviews.Review
		saved  []string
	)
	err := e.store.WithTx(ctx, func(tx *storage.Repos) error {
		exists, err := tx.Places.Exists(ctx, in.PlaceID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("place %d: %w", in.PlaceID, dbx.ErrNotFound)
		}

		r := &reviews.Review{
			PlaceID:    in.PlaceID,
			AuthorName: in.AuthorName,
			Rating:     in.Rating,
			Text:       in.Text,
		}
		if err := tx.Reviews.Create(ctx, r); err != nil {
			return err
		}

		r.Photos = make([]reviews.Photo, 0, len(in.Photos))
		for i, f := range in.Photos {
			url, err := e.media.Save(ctx, media.ReviewPhotos, r.ID, f)
			if err != nil {
				return fmt.Errorf("failed to store photo %d: %w", i+1, err)
			}
			saved = append(saved, url)

			photo := &reviews.Photo{ReviewID: r.ID, URL: url}
			if err := tx.Reviews.AddPhoto(ctx, photo); err != nil {
				return err
			}
			r.Photos = append(r.Photos, *photo)
		}

		review = r
		return nil
	})
	if err != nil {
		e.discard(saved)
		if errors.Is(err, dbx.ErrNotFound) {
			metrics.ReviewRejected("not_found")
		} else {
			metrics.ReviewRejected("error")
		}
		return nil, err
	}

	metrics.ReviewSubmitted(len(review.Photos))
	e.logger.Infow("review submitted", "review_id", review.ID, "place_id", review.PlaceID, "photos", len(review.Photos))
	return review, nil
}

// discard removes files of a submission that was rolled back. The request
// context may already be done, so it gets its own deadline.
func (e *Engine) discard(urls []string) {
	if len(urls) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, url := range urls {
		if err := e.media.Remove(ctx, url); err != nil {
			e.logger.Warnw("failed to remove orphaned review photo", "url", url, "error", err)
		}
	}
}

// ListApprovedReviews returns the approved reviews of a place, newest first.
// An unknown place simply has no reviews.
func (e *Engine) ListApprovedReviews(ctx context.Context, placeID int64) ([]reviews.Review, error) {
	list, gen, ok := e.cache.get(placeID)
	if ok {
		return list, nil
	}

	list, err := e.store.Repositories().Reviews.ListByPlace(ctx, placeID, reviews.StatusApproved)
	if err != nil {
		return nil, err
	}
	e.cache.put(placeID, list, gen)
	return list, nil
}

// ListPendingReviews returns every review awaiting moderation, newest first.
func (e *Engine) ListPendingReviews(ctx context.Context, credential string) ([]reviews.Review, error) {
	if err := e.Authorize(ctx, credential); err != nil {
		return nil, err
	}
	return e.store.Repositories().Reviews.ListByStatus(ctx, reviews.StatusPending)
}

// ApproveReview moves a review to approved. Approving an already approved
// review succeeds and changes nothing.
func (e *Engine) ApproveReview(ctx context.Context, credential string, reviewID int64) (*reviews.Review, error) {
	if err := e.Authorize(ctx, credential); err != nil {
		return nil, err
	}

	review, err := e.store.Repositories().Reviews.SetStatus(ctx, reviewID, reviews.StatusApproved)
	if err != nil {
		return nil, err
	}
	e.cache.invalidate(review.PlaceID)

	metrics.ReviewApproved()
	e.logger.Infow("review approved", "review_id", review.ID, "place_id", review.PlaceID)
	return review, nil
}

// DeletePlace removes a place with its reviews and their photo rows, then
// drops the place's cached approved list. Deleting through
// storage.DeletePlace directly would leave that list served until it expires.
func (e *Engine) DeletePlace(ctx context.Context, credential string, placeID int64) error {
	if err := e.Authorize(ctx, credential); err != nil {
		return err
	}

	if err := storage.DeletePlace(ctx, e.store, placeID); err != nil {
		return err
	}
	e.cache.invalidate(placeID)

	e.logger.Infow("place deleted", "place_id", placeID)
	return nil
}
