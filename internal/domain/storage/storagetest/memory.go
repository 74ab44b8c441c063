// Package storagetest provides an in-memory storage.Store for tests. A
// transaction works on a copy of the whole state and swaps it in on commit,
// so a failed unit of work leaves no trace.
package storagetest

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"
	"time"

	"chebplace/internal/domain/events"
	"chebplace/internal/domain/feedback"
	"chebplace/internal/domain/gallery"
	"chebplace/internal/domain/places"
	"chebplace/internal/domain/reviews"
	"chebplace/internal/domain/storage"
	"chebplace/internal/infra/dbx"
)

// State is a plain copy of every table, comparable with assert.Equal.
type State struct {
	Places        map[int64]places.Place
	Reviews       map[int64]reviews.Review
	ReviewPhotos  map[int64]reviews.Photo
	Events        map[int64]events.Event
	Sections      map[int64]gallery.Section
	GalleryPhotos map[int64]gallery.Photo
	Feedback      map[int64]feedback.Feedback
	Seq           map[string]int64
}

func newState() *State {
	return &State{
		Places:        map[int64]places.Place{},
		Reviews:       map[int64]reviews.Review{},
		ReviewPhotos:  map[int64]reviews.Photo{},
		Events:        map[int64]events.Event{},
		Sections:      map[int64]gallery.Section{},
		GalleryPhotos: map[int64]gallery.Photo{},
		Feedback:      map[int64]feedback.Feedback{},
		Seq:           map[string]int64{},
	}
}

func (s *State) clone() *State {
	return &State{
		Places:        maps.Clone(s.Places),
		Reviews:       maps.Clone(s.Reviews),
		ReviewPhotos:  maps.Clone(s.ReviewPhotos),
		Events:        maps.Clone(s.Events),
		Sections:      maps.Clone(s.Sections),
		GalleryPhotos: maps.Clone(s.GalleryPhotos),
		Feedback:      maps.Clone(s.Feedback),
		Seq:           maps.Clone(s.Seq),
	}
}

func (s *State) next(table string) int64 {
	s.Seq[table]++
	return s.Seq[table]
}

// Store is safe for concurrent use; transactions are serialized.
type Store struct {
	mu    sync.Mutex
	state *State
	clock time.Time

	// FailOn, when set, is consulted before every write with the operation
	// name (e.g. "reviews.AddPhoto"); a non-nil result aborts that write.
	FailOn func(op string) error
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		state: newState(),
		clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Snapshot returns a copy of the committed state.
func (m *Store) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state.clone()
}

func (m *Store) Repositories() *storage.Repos {
	return m.repos(&db{store: m})
}

func (m *Store) WithTx(ctx context.Context, fn func(tx *storage.Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := m.state.clone()
	if err := fn(m.repos(&db{store: m, tx: working})); err != nil {
		return err
	}
	m.state = working
	return nil
}

func (m *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *Store) repos(d *db) *storage.Repos {
	return &storage.Repos{
		Places:   &placeRepo{d},
		Reviews:  &reviewRepo{d},
		Events:   &eventRepo{d},
		Gallery:  &galleryRepo{d},
		Feedback: &feedbackRepo{d},
	}
}

// tick hands out strictly increasing timestamps so ordering by created_at is
// deterministic.
func (m *Store) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

type db struct {
	store *Store
	tx    *State
}

func (d *db) read(fn func(st *State) error) error {
	if d.tx != nil {
		return fn(d.tx)
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	return fn(d.store.state)
}

// write applies fn to a copy when running outside a transaction so that a
// failing statement never leaves a half-applied change behind.
func (d *db) write(op string, fn func(st *State) error) error {
	if d.tx != nil {
		if err := d.fail(op); err != nil {
			return err
		}
		return fn(d.tx)
	}

	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	if err := d.fail(op); err != nil {
		return err
	}
	working := d.store.state.clone()
	if err := fn(working); err != nil {
		return err
	}
	d.store.state = working
	return nil
}

func (d *db) fail(op string) error {
	if d.store.FailOn == nil {
		return nil
	}
	return d.store.FailOn(op)
}

// ---- places

type placeRepo struct{ d *db }

func (r *placeRepo) Create(_ context.Context, place *places.Place) error {
	return r.d.write("places.Create", func(st *State) error {
		place.ID = st.next("places")
		st.Places[place.ID] = *place
		return nil
	})
}

func (r *placeRepo) List(_ context.Context) ([]places.Place, error) {
	list := []places.Place{}
	err := r.d.read(func(st *State) error {
		for _, p := range st.Places {
			list = append(list, p)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

func (r *placeRepo) GetByID(_ context.Context, placeID int64) (*places.Place, error) {
	var out *places.Place
	err := r.d.read(func(st *State) error {
		p, ok := st.Places[placeID]
		if !ok {
			return dbx.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (r *placeRepo) Exists(_ context.Context, placeID int64) (bool, error) {
	var ok bool
	err := r.d.read(func(st *State) error {
		_, ok = st.Places[placeID]
		return nil
	})
	return ok, err
}

func (r *placeRepo) Delete(_ context.Context, placeID int64) error {
	return r.d.write("places.Delete", func(st *State) error {
		for id, rv := range st.Reviews {
			if rv.PlaceID != placeID {
				continue
			}
			deleteReviewPhotos(st, id)
			delete(st.Reviews, id)
		}
		if _, ok := st.Places[placeID]; !ok {
			return dbx.ErrNotFound
		}
		delete(st.Places, placeID)
		return nil
	})
}

// ---- reviews

type reviewRepo struct{ d *db }

func (r *reviewRepo) Create(_ context.Context, review *reviews.Review) error {
	return r.d.write("reviews.Create", func(st *State) error {
		if _, ok := st.Places[review.PlaceID]; !ok {
			return dbx.ErrNotFound
		}
		review.ID = st.next("reviews")
		review.Status = reviews.StatusPending
		review.CreatedAt = r.d.store.tick()
		review.Photos = []reviews.Photo{}
		st.Reviews[review.ID] = *review
		return nil
	})
}

func (r *reviewRepo) AddPhoto(_ context.Context, photo *reviews.Photo) error {
	return r.d.write("reviews.AddPhoto", func(st *State) error {
		if _, ok := st.Reviews[photo.ReviewID]; !ok {
			return dbx.ErrNotFound
		}
		photo.ID = st.next("review_photos")
		st.ReviewPhotos[photo.ID] = *photo
		return nil
	})
}

func (r *reviewRepo) GetByID(_ context.Context, reviewID int64) (*reviews.Review, error) {
	var out *reviews.Review
	err := r.d.read(func(st *State) error {
		rv, ok := st.Reviews[reviewID]
		if !ok {
			return dbx.ErrNotFound
		}
		rv.Photos = reviewPhotos(st, rv.ID)
		out = &rv
		return nil
	})
	return out, err
}

func (r *reviewRepo) ListByPlace(_ context.Context, placeID int64, status reviews.Status) ([]reviews.Review, error) {
	return r.list(func(rv reviews.Review) bool {
		return rv.PlaceID == placeID && rv.Status == status
	})
}

func (r *reviewRepo) ListByStatus(_ context.Context, status reviews.Status) ([]reviews.Review, error) {
	return r.list(func(rv reviews.Review) bool { return rv.Status == status })
}

func (r *reviewRepo) list(match func(reviews.Review) bool) ([]reviews.Review, error) {
	list := []reviews.Review{}
	err := r.d.read(func(st *State) error {
		for _, rv := range st.Reviews {
			if !match(rv) {
				continue
			}
			rv.Photos = reviewPhotos(st, rv.ID)
			list = append(list, rv)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, err
}

func (r *reviewRepo) SetStatus(ctx context.Context, reviewID int64, status reviews.Status) (*reviews.Review, error) {
	err := r.d.write("reviews.SetStatus", func(st *State) error {
		rv, ok := st.Reviews[reviewID]
		if !ok {
			return dbx.ErrNotFound
		}
		rv.Status = status
		st.Reviews[reviewID] = rv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, reviewID)
}

func (r *reviewRepo) Delete(_ context.Context, reviewID int64) error {
	return r.d.write("reviews.Delete", func(st *State) error {
		deleteReviewPhotos(st, reviewID)
		if _, ok := st.Reviews[reviewID]; !ok {
			return dbx.ErrNotFound
		}
		delete(st.Reviews, reviewID)
		return nil
	})
}

func reviewPhotos(st *State, reviewID int64) []reviews.Photo {
	photos := []reviews.Photo{}
	for _, p := range st.ReviewPhotos {
		if p.ReviewID == reviewID {
			photos = append(photos, p)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID < photos[j].ID })
	return photos
}

func deleteReviewPhotos(st *State, reviewID int64) {
	for id, p := range st.ReviewPhotos {
		if p.ReviewID == reviewID {
			delete(st.ReviewPhotos, id)
		}
	}
}

// ---- events

type eventRepo struct{ d *db }

func (r *eventRepo) Create(_ context.Context, event *events.Event) error {
	return r.d.write("events.Create", func(st *State) error {
		event.ID = st.next("events")
		st.Events[event.ID] = *event
		return nil
	})
}

func (r *eventRepo) List(_ context.Context) ([]events.Event, error) {
	list := []events.Event{}
	err := r.d.read(func(st *State) error {
		for _, e := range st.Events {
			list = append(list, e)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

func (r *eventRepo) GetByID(_ context.Context, eventID int64) (*events.Event, error) {
	var out *events.Event
	err := r.d.read(func(st *State) error {
		e, ok := st.Events[eventID]
		if !ok {
			return dbx.ErrNotFound
		}
		out = &e
		return nil
	})
	return out, err
}

func (r *eventRepo) Update(_ context.Context, event *events.Event) error {
	return r.d.write("events.Update", func(st *State) error {
		if _, ok := st.Events[event.ID]; !ok {
			return dbx.ErrNotFound
		}
		st.Events[event.ID] = *event
		return nil
	})
}

func (r *eventRepo) Delete(_ context.Context, eventID int64) error {
	return r.d.write("events.Delete", func(st *State) error {
		if _, ok := st.Events[eventID]; !ok {
			return dbx.ErrNotFound
		}
		delete(st.Events, eventID)
		return nil
	})
}

// ---- gallery

type galleryRepo struct{ d *db }

func (r *galleryRepo) CreateSection(_ context.Context, section *gallery.Section) error {
	return r.d.write("gallery.CreateSection", func(st *State) error {
		if _, ok := sectionByName(st, section.Name); ok {
			return dbx.ErrConflict
		}
		section.ID = st.next("gallery_sections")
		section.Photos = []gallery.Photo{}
		st.Sections[section.ID] = gallery.Section{ID: section.ID, Name: section.Name}
		return nil
	})
}

func (r *galleryRepo) EnsureSection(_ context.Context, name string) (*gallery.Section, error) {
	var out gallery.Section
	err := r.d.write("gallery.EnsureSection", func(st *State) error {
		if s, ok := sectionByName(st, name); ok {
			out = s
			return nil
		}
		out = gallery.Section{ID: st.next("gallery_sections"), Name: name}
		st.Sections[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Photos = []gallery.Photo{}
	return &out, nil
}

func (r *galleryRepo) RenameSection(ctx context.Context, sectionID int64, name string) (*gallery.Section, error) {
	err := r.d.write("gallery.RenameSection", func(st *State) error {
		s, ok := st.Sections[sectionID]
		if !ok {
			return dbx.ErrNotFound
		}
		if other, taken := sectionByName(st, name); taken && other.ID != sectionID {
			return dbx.ErrConflict
		}
		s.Name = name
		st.Sections[sectionID] = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetSection(ctx, sectionID)
}

func (r *galleryRepo) DeleteSection(_ context.Context, sectionID int64) error {
	return r.d.write("gallery.DeleteSection", func(st *State) error {
		for id, p := range st.GalleryPhotos {
			if p.SectionID == sectionID {
				delete(st.GalleryPhotos, id)
			}
		}
		if _, ok := st.Sections[sectionID]; !ok {
			return dbx.ErrNotFound
		}
		delete(st.Sections, sectionID)
		return nil
	})
}

func (r *galleryRepo) GetSection(_ context.Context, sectionID int64) (*gallery.Section, error) {
	var out *gallery.Section
	err := r.d.read(func(st *State) error {
		s, ok := st.Sections[sectionID]
		if !ok {
			return dbx.ErrNotFound
		}
		s.Photos = sectionPhotos(st, s.ID)
		out = &s
		return nil
	})
	return out, err
}

func (r *galleryRepo) ListSections(_ context.Context) ([]gallery.Section, error) {
	list := []gallery.Section{}
	err := r.d.read(func(st *State) error {
		for _, s := range st.Sections {
			s.Photos = sectionPhotos(st, s.ID)
			list = append(list, s)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

func (r *galleryRepo) AddPhoto(_ context.Context, photo *gallery.Photo) error {
	return r.d.write("gallery.AddPhoto", func(st *State) error {
		if _, ok := st.Sections[photo.SectionID]; !ok {
			return dbx.ErrNotFound
		}
		photo.ID = st.next("gallery_photos")
		st.GalleryPhotos[photo.ID] = *photo
		return nil
	})
}

func (r *galleryRepo) DeletePhoto(_ context.Context, photoID int64) error {
	return r.d.write("gallery.DeletePhoto", func(st *State) error {
		if _, ok := st.GalleryPhotos[photoID]; !ok {
			return dbx.ErrNotFound
		}
		delete(st.GalleryPhotos, photoID)
		return nil
	})
}

func sectionByName(st *State, name string) (gallery.Section, bool) {
	var (
		found gallery.Section
		ok    bool
	)
	for _, s := range st.Sections {
		if s.Name == name && (!ok || s.ID < found.ID) {
			found, ok = s, true
		}
	}
	return found, ok
}

func sectionPhotos(st *State, sectionID int64) []gallery.Photo {
	photos := []gallery.Photo{}
	for _, p := range st.GalleryPhotos {
		if p.SectionID == sectionID {
			photos = append(photos, p)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID < photos[j].ID })
	return photos
}

// ---- feedback

type feedbackRepo struct{ d *db }

func (r *feedbackRepo) Create(_ context.Context, fb *feedback.Feedback) error {
	return r.d.write("feedback.Create", func(st *State) error {
		fb.ID = st.next("feedback")
		fb.IsRead = false
		fb.CreatedAt = r.d.store.tick()
		st.Feedback[fb.ID] = *fb
		return nil
	})
}

func (r *feedbackRepo) List(_ context.Context) ([]feedback.Feedback, error) {
	list := []feedback.Feedback{}
	err := r.d.read(func(st *State) error {
		for _, fb := range st.Feedback {
			list = append(list, fb)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, err
}

func (r *feedbackRepo) MarkRead(_ context.Context, feedbackID int64) (*feedback.Feedback, error) {
	var out feedback.Feedback
	err := r.d.write("feedback.MarkRead", func(st *State) error {
		fb, ok := st.Feedback[feedbackID]
		if !ok {
			return dbx.ErrNotFound
		}
		fb.IsRead = true
		st.Feedback[feedbackID] = fb
		out = fb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ErrInjected is a convenience error for FailOn hooks.
var ErrInjected = errors.New("injected failure")
