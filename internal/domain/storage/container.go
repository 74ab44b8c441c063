package storage

import (
	"context"
	"fmt"

	"chebplace/internal/domain/events"
	"chebplace/internal/domain/feedback"
	"chebplace/internal/domain/gallery"
	"chebplace/internal/domain/places"
	"chebplace/internal/domain/reviews"
	"chebplace/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repos is the full set of entity repositories, bound either to the pool or
// to one open transaction.
type Repos struct {
	Places   places.Store
	Reviews  reviews.Store
	Events   events.Store
	Gallery  gallery.Store
	Feedback feedback.Store
}

func newRepos(q dbx.Querier) Repos {
	return Repos{
		Places:   places.NewRepository(q),
		Reviews:  reviews.NewRepository(q),
		Events:   events.NewRepository(q),
		Gallery:  gallery.NewRepository(q),
		Feedback: feedback.NewRepository(q),
	}
}

// Store is what handlers and the moderation engine depend on.
type Store interface {
	Repositories() *Repos
	// WithTx runs fn as one unit of work; nothing fn wrote is visible unless
	// it returns nil.
	WithTx(ctx context.Context, fn func(tx *Repos) error) error
	Ping(ctx context.Context) error
}

type Container struct {
	pool *pgxpool.Pool
	Repos
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:  db,
		Repos: newRepos(db),
	}
}

func (c *Container) Repositories() *Repos {
	return &c.Repos
}

func (c *Container) WithTx(ctx context.Context, fn func(tx *Repos) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	repos := newRepos(tx)
	if err := fn(&repos); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *Container) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// DeletePlace removes a place with its reviews and review photos atomically.
// It does not touch caches; moderation.Engine.DeletePlace also invalidates the
// place's approved review list.
func DeletePlace(ctx context.Context, s Store, placeID int64) error {
	return s.WithTx(ctx, func(tx *Repos) error {
		return tx.Places.Delete(ctx, placeID)
	})
}

// DeleteGallerySection removes a section with its photos atomically.
func DeleteGallerySection(ctx context.Context, s Store, sectionID int64) error {
	return s.WithTx(ctx, func(tx *Repos) error {
		return tx.Gallery.DeleteSection(ctx, sectionID)
	})
}
