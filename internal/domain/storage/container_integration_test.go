package storage_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"chebplace/internal/auth"
	"chebplace/internal/db"
	"chebplace/internal/domain/events"
	"chebplace/internal/domain/feedback"
	"chebplace/internal/domain/gallery"
	"chebplace/internal/domain/places"
	"chebplace/internal/domain/reviews"
	"chebplace/internal/domain/storage"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/media"
	"chebplace/internal/media/mediatest"
	"chebplace/internal/moderation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// setupTestDB starts PostgreSQL in a container and applies the migrations.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("chebplace_test"),
		postgres.WithUsername("chebplace"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	addr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, err = db.Migrate(addr)
	require.NoError(t, err, "apply migrations")

	pool, err := db.New(db.Config{Addr: addr, MaxConns: 5, MaxIdleTime: time.Minute})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func createPlace(t *testing.T, ctx context.Context, s storage.Store, name string) *places.Place {
	t.Helper()
	p := &places.Place{Name: name, Category: "park", Lat: "56.13", Lng: "47.25"}
	require.NoError(t, s.Repositories().Places.Create(ctx, p))
	return p
}

func TestContainer(t *testing.T) {
	pool := setupTestDB(t)
	store := storage.NewContainer(pool)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	t.Run("reviews are created pending and listed newest first", func(t *testing.T) {
		repos := store.Repositories()
		place := createPlace(t, ctx, store, "Bay Park")

		first := &reviews.Review{PlaceID: place.ID, Rating: 4, Text: "first", Status: reviews.StatusApproved}
		require.NoError(t, repos.Reviews.Create(ctx, first))
		assert.Equal(t, reviews.StatusPending, first.Status)
		assert.False(t, first.CreatedAt.IsZero())

		second := &reviews.Review{PlaceID: place.ID, Rating: 5, Text: "second"}
		require.NoError(t, repos.Reviews.Create(ctx, second))
		require.NoError(t, repos.Reviews.AddPhoto(ctx, &reviews.Photo{ReviewID: second.ID, URL: "/static/review_photos/a.jpg"}))

		list, err := repos.Reviews.ListByPlace(ctx, place.ID, reviews.StatusApproved)
		require.NoError(t, err)
		assert.Empty(t, list)

		for _, id := range []int64{first.ID, second.ID} {
			_, err := repos.Reviews.SetStatus(ctx, id, reviews.StatusApproved)
			require.NoError(t, err)
		}

		list, err = repos.Reviews.ListByPlace(ctx, place.ID, reviews.StatusApproved)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		require.Len(t, list[0].Photos, 1)
		assert.Equal(t, "/static/review_photos/a.jpg", list[0].Photos[0].URL)
		assert.Empty(t, list[1].Photos)
	})

	t.Run("review for unknown place", func(t *testing.T) {
		err := store.Repositories().Reviews.Create(ctx, &reviews.Review{PlaceID: 999999, Rating: 3, Text: "x"})
		assert.ErrorIs(t, err, dbx.ErrNotFound)
	})

	t.Run("delete place cascades to reviews and photos", func(t *testing.T) {
		repos := store.Repositories()
		place := createPlace(t, ctx, store, "Old Town")

		r := &reviews.Review{PlaceID: place.ID, Rating: 2, Text: "meh"}
		require.NoError(t, repos.Reviews.Create(ctx, r))
		require.NoError(t, repos.Reviews.AddPhoto(ctx, &reviews.Photo{ReviewID: r.ID, URL: "/static/review_photos/b.jpg"}))

		require.NoError(t, storage.DeletePlace(ctx, store, place.ID))

		_, err := repos.Places.GetByID(ctx, place.ID)
		assert.ErrorIs(t, err, dbx.ErrNotFound)
		_, err = repos.Reviews.GetByID(ctx, r.ID)
		assert.ErrorIs(t, err, dbx.ErrNotFound)

		assert.ErrorIs(t, storage.DeletePlace(ctx, store, place.ID), dbx.ErrNotFound)
	})

	t.Run("events ordered by date", func(t *testing.T) {
		repos := store.Repositories()
		for _, e := range []events.Event{
			{Title: "Fair", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), ShortInfo: "fair"},
			{Title: "Concert", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ShortInfo: "concert"},
		} {
			require.NoError(t, repos.Events.Create(ctx, &e))
		}

		list, err := repos.Events.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Concert", list[0].Title)
		assert.Equal(t, "2024-06-01", list[0].Date.Format(events.DateLayout))

		list[0].ShortInfo = "moved"
		require.NoError(t, repos.Events.Update(ctx, &list[0]))
		got, err := repos.Events.GetByID(ctx, list[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "moved", got.ShortInfo)

		require.NoError(t, repos.Events.Delete(ctx, got.ID))
		assert.ErrorIs(t, repos.Events.Delete(ctx, got.ID), dbx.ErrNotFound)
	})

	t.Run("gallery sections", func(t *testing.T) {
		repos := store.Repositories()

		general, err := repos.Gallery.EnsureSection(ctx, "general")
		require.NoError(t, err)
		again, err := repos.Gallery.EnsureSection(ctx, "general")
		require.NoError(t, err)
		assert.Equal(t, general.ID, again.ID)

		err = repos.Gallery.CreateSection(ctx, &gallery.Section{Name: "general"})
		assert.ErrorIs(t, err, dbx.ErrConflict)

		parks := &gallery.Section{Name: "Parks"}
		require.NoError(t, repos.Gallery.CreateSection(ctx, parks))
		_, err = repos.Gallery.RenameSection(ctx, parks.ID, "general")
		assert.ErrorIs(t, err, dbx.ErrConflict)

		require.NoError(t, repos.Gallery.AddPhoto(ctx, &gallery.Photo{SectionID: parks.ID, URL: "https://example.com/p.jpg"}))
		err = repos.Gallery.AddPhoto(ctx, &gallery.Photo{SectionID: 999999, URL: "https://example.com/q.jpg"})
		assert.ErrorIs(t, err, dbx.ErrNotFound)

		sections, err := repos.Gallery.ListSections(ctx)
		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Len(t, sections[1].Photos, 1)

		require.NoError(t, storage.DeleteGallerySection(ctx, store, parks.ID))
		_, err = repos.Gallery.GetSection(ctx, parks.ID)
		assert.ErrorIs(t, err, dbx.ErrNotFound)
	})

	t.Run("feedback", func(t *testing.T) {
		repos := store.Repositories()

		fb := &feedback.Feedback{Name: "Anna", Message: "more benches"}
		require.NoError(t, repos.Feedback.Create(ctx, fb))
		assert.False(t, fb.IsRead)

		read, err := repos.Feedback.MarkRead(ctx, fb.ID)
		require.NoError(t, err)
		assert.True(t, read.IsRead)

		_, err = repos.Feedback.MarkRead(ctx, 999999)
		assert.ErrorIs(t, err, dbx.ErrNotFound)
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		var created int64
		boom := errors.New("boom")

		err := store.WithTx(ctx, func(tx *storage.Repos) error {
			p := &places.Place{Name: "Ghost", Category: "x", Lat: "0", Lng: "0"}
			if err := tx.Places.Create(ctx, p); err != nil {
				return err
			}
			created = p.ID
			return boom
		})
		require.ErrorIs(t, err, boom)

		exists, err := store.Repositories().Places.Exists(ctx, created)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestModerationOnPostgres(t *testing.T) {
	pool := setupTestDB(t)
	store := storage.NewContainer(pool)
	ctx := context.Background()

	files := mediatest.New()
	engine := moderation.New(store, files, auth.NewStaticKeyAuthorizer("key"), zap.NewNop().Sugar(), moderation.Config{})

	place := createPlace(t, ctx, store, "Theatre")
	photo := func(name string) media.File {
		return media.File{Name: name, Content: strings.NewReader("image " + name)}
	}

	// the second file fails, so neither the review nor the first photo survive
	files.FailOnSave = 2
	_, err := engine.SubmitReview(ctx, moderation.ReviewInput{
		PlaceID: place.ID,
		Rating:  5,
		Text:    "lovely",
		Photos:  []media.File{photo("a.jpg"), photo("b.jpg")},
	})
	require.Error(t, err)
	assert.Empty(t, files.URLs())

	pending, err := engine.ListPendingReviews(ctx, "key")
	require.NoError(t, err)
	assert.Empty(t, pending)

	review, err := engine.SubmitReview(ctx, moderation.ReviewInput{
		PlaceID: place.ID,
		Rating:  5,
		Text:    "lovely",
		Photos:  []media.File{photo("c.jpg")},
	})
	require.NoError(t, err)

	approved, err := engine.ApproveReview(ctx, "key", review.ID)
	require.NoError(t, err)
	assert.Equal(t, reviews.StatusApproved, approved.Status)

	list, err := engine.ListApprovedReviews(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Photos, 1)
}
