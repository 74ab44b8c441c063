package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chebplace/internal/auth"
	"chebplace/internal/domain/storage/storagetest"
	"chebplace/internal/media/mediatest"
	"chebplace/internal/moderation"
	"chebplace/internal/ratelimiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAdminKey = "s3cret-admin-key"

type testEnv struct {
	app     *application
	store   *storagetest.Store
	files   *mediatest.Store
	handler http.Handler
}

type testOption func(*application)

func withRateLimit(limit int) testOption {
	return func(app *application) {
		if rl, ok := app.rateLimiter.(*ratelimiter.FixedWindowRateLimiter); ok {
			rl.Close()
		}
		app.config.rateLimiter = ratelimiter.Config{RequestsPerTimeFrame: limit, TimeFrame: time.Minute, Enabled: true}
		app.rateLimiter = ratelimiter.NewFixedWindowLimiter(limit, time.Minute)
	}
}

func newTestEnv(t *testing.T, opts ...testOption) *testEnv {
	t.Helper()

	store := storagetest.New()
	files := mediatest.New()
	logger := zap.NewNop().Sugar()

	app := &application{
		config: config{
			env:         "test",
			corsOrigins: []string{"*"},
			auth: authConfig{
				basic: basicConfig{user: "ops", pass: "ops-pass"},
				admin: adminConfig{mode: "static", key: testAdminKey, tokenExp: time.Hour},
			},
			reviewCache: moderation.Config{CacheSize: 16, CacheTTL: time.Minute},
		},
		store:       store,
		media:       files,
		logger:      logger,
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Minute),
	}
	for _, opt := range opts {
		opt(app)
	}

	authz := auth.Authorizer(auth.NewStaticKeyAuthorizer(testAdminKey))
	if app.tokens != nil {
		authz = app.tokens
	}
	app.moderation = moderation.New(store, files, authz, logger, app.config.reviewCache)

	t.Cleanup(func() {
		if rl, ok := app.rateLimiter.(*ratelimiter.FixedWindowRateLimiter); ok {
			rl.Close()
		}
	})

	return &testEnv{app: app, store: store, files: files, handler: app.mount()}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) admin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := jsonRequest(t, method, path, body)
	req.Header.Set(adminKeyHeader, testAdminKey)
	return e.do(t, req)
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a form with the given fields and n small files
// under fileKey.
func multipartRequest(t *testing.T, path string, fields map[string]string, fileKey string, n int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for i := range n {
		fw, err := mw.CreateFormFile(fileKey, fmt.Sprintf("photo%d.jpg", i+1))
		require.NoError(t, err)
		_, err = fw.Write([]byte(fmt.Sprintf("image bytes %d", i+1)))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, v), string(env.Data))
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func createPlace(t *testing.T, e *testEnv, name string) int64 {
	t.Helper()
	rr := e.admin(t, http.MethodPost, "/admin/places", map[string]any{
		"name": name, "category": "park", "lat": "56.1322", "lng": "47.2519",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var place struct {
		ID int64 `json:"id"`
	}
	decodeData(t, rr, &place)
	return place.ID
}

type reviewJSON struct {
	ID         int64   `json:"id"`
	PlaceID    int64   `json:"place_id"`
	AuthorName *string `json:"author_name"`
	Rating     int     `json:"rating"`
	Text       string  `json:"text"`
	Status     string  `json:"status"`
	Photos     []struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"photos"`
}

func TestReviewModerationFlow(t *testing.T) {
	e := newTestEnv(t)
	placeID := createPlace(t, e, "Bay Park")

	rr := e.do(t, multipartRequest(t, "/reviews", map[string]string{
		"place_id": fmt.Sprint(placeID),
		"rating":   "4",
		"text":     "Great spot",
	}, "files", 2))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var submitted struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rr, &submitted)
	assert.Equal(t, "pending", submitted.Status)
	assert.Len(t, e.files.URLs(), 2)

	// pending reviews are invisible to visitors
	rr = e.get(t, fmt.Sprintf("/reviews?place_id=%d", placeID))
	require.Equal(t, http.StatusOK, rr.Code)
	var public []reviewJSON
	decodeData(t, rr, &public)
	assert.Empty(t, public)

	rr = e.admin(t, http.MethodGet, "/admin/reviews/pending", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var pending []reviewJSON
	decodeData(t, rr, &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, submitted.ID, pending[0].ID)

	rr = e.admin(t, http.MethodPost, fmt.Sprintf("/admin/reviews/%d/approve", submitted.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var approved struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rr, &approved)
	assert.Equal(t, "approved", approved.Status)

	rr = e.get(t, fmt.Sprintf("/reviews?place_id=%d", placeID))
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &public)
	require.Len(t, public, 1)
	assert.Equal(t, 4, public[0].Rating)
	assert.Equal(t, "Great spot", public[0].Text)
	assert.Nil(t, public[0].AuthorName)
	require.Len(t, public[0].Photos, 2)
	for _, p := range public[0].Photos {
		assert.Contains(t, e.files.URLs(), p.URL)
	}

	rr = e.admin(t, http.MethodGet, "/admin/reviews/pending", nil)
	decodeData(t, rr, &pending)
	assert.Empty(t, pending)
}

func TestSubmitReview_Rejected(t *testing.T) {
	e := newTestEnv(t)
	placeID := createPlace(t, e, "Embankment")

	tests := []struct {
		name    string
		fields  map[string]string
		photos  int
		code    int
		message string
	}{
		{
			name:    "too many photos",
			fields:  map[string]string{"place_id": fmt.Sprint(placeID), "rating": "5", "text": "ok"},
			photos:  6,
			code:    http.StatusBadRequest,
			message: "at most 5 photos",
		},
		{
			name:    "rating out of range",
			fields:  map[string]string{"place_id": fmt.Sprint(placeID), "rating": "0", "text": "ok"},
			code:    http.StatusBadRequest,
			message: "rating must be between 1 and 5",
		},
		{
			name:    "blank text",
			fields:  map[string]string{"place_id": fmt.Sprint(placeID), "rating": "3", "text": "   "},
			code:    http.StatusBadRequest,
			message: "text is required",
		},
		{
			name:    "missing place",
			fields:  map[string]string{"rating": "3", "text": "ok"},
			code:    http.StatusBadRequest,
			message: "place_id is required",
		},
		{
			name:   "unknown place",
			fields: map[string]string{"place_id": "999", "rating": "3", "text": "ok"},
			photos: 1,
			code:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.store.Snapshot()

			rr := e.do(t, multipartRequest(t, "/reviews", tt.fields, "files", tt.photos))
			require.Equal(t, tt.code, rr.Code, rr.Body.String())

			body := decodeError(t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Status)
			if tt.message != "" {
				assert.Contains(t, body.Message, tt.message)
			}

			assert.Equal(t, before, e.store.Snapshot())
			assert.Empty(t, e.files.URLs())
		})
	}
}

func TestSubmitReview_SanitizesAuthor(t *testing.T) {
	e := newTestEnv(t)
	placeID := createPlace(t, e, "Old Town")

	rr := e.do(t, multipartRequest(t, "/reviews", map[string]string{
		"place_id":    fmt.Sprint(placeID),
		"author_name": "<b>Ivan</b>",
		"rating":      "5",
		"text":        "<script>alert(1)</script>Lovely",
	}, "files", 0))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	st := e.store.Snapshot()
	require.Len(t, st.Reviews, 1)
	for _, r := range st.Reviews {
		require.NotNil(t, r.AuthorName)
		assert.Equal(t, "Ivan", *r.AuthorName)
		assert.Equal(t, "Lovely", r.Text)
	}
}

func TestApproveReview_NotFound(t *testing.T) {
	e := newTestEnv(t)

	rr := e.admin(t, http.MethodPost, "/admin/reviews/42/approve", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = e.admin(t, http.MethodPost, "/admin/reviews/abc/approve", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListReviews_RequiresPlaceID(t *testing.T) {
	e := newTestEnv(t)

	rr := e.get(t, "/reviews")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "place_id is required", decodeError(t, rr).Message)
}

func TestAdminRoutes_Unauthorized(t *testing.T) {
	e := newTestEnv(t)
	placeID := createPlace(t, e, "Cathedral")

	rr := e.do(t, multipartRequest(t, "/reviews", map[string]string{
		"place_id": fmt.Sprint(placeID), "rating": "3", "text": "fine",
	}, "files", 0))
	require.Equal(t, http.StatusCreated, rr.Code)

	before := e.store.Snapshot()

	requests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/admin/reviews/pending", nil},
		{http.MethodPost, "/admin/reviews/1/approve", nil},
		{http.MethodPost, "/admin/places", map[string]any{"name": "x", "category": "y", "lat": "1", "lng": "2"}},
		{http.MethodPost, "/admin/events", map[string]any{"title": "x", "date": "2024-06-01", "short_info": "y"}},
		{http.MethodDelete, "/admin/events/1", nil},
		{http.MethodPost, "/admin/gallery/sections", map[string]any{"name": "x"}},
		{http.MethodGet, "/admin/feedback", nil},
	}

	for _, key := range []string{"", "wrong-key"} {
		for _, tt := range requests {
			t.Run(fmt.Sprintf("%s %s key=%q", tt.method, tt.path, key), func(t *testing.T) {
				req := jsonRequest(t, tt.method, tt.path, tt.body)
				if key != "" {
					req.Header.Set(adminKeyHeader, key)
				}
				rr := e.do(t, req)
				require.Equal(t, http.StatusUnauthorized, rr.Code)
				assert.Equal(t, "unauthorized", decodeError(t, rr).Message)
			})
		}
	}

	assert.Equal(t, before, e.store.Snapshot())
}

func TestAdminRoutes_BearerCredential(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminKey)
	rr := e.do(t, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

type eventJSON struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	ShortInfo string  `json:"short_info"`
	CoverURL  *string `json:"cover_url"`
}

func TestEvents(t *testing.T) {
	e := newTestEnv(t)

	rr := e.admin(t, http.MethodPost, "/admin/events", map[string]any{
		"title": "Fair", "date": "2024-07-01", "short_info": "line one\nline two",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "short_info must be a single line")
	assert.Empty(t, e.store.Snapshot().Events)

	rr = e.admin(t, http.MethodPost, "/admin/events", map[string]any{
		"title": "Fair", "date": "2024-07-01", "short_info": "Summer fair on the square",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var fair eventJSON
	decodeData(t, rr, &fair)

	rr = e.admin(t, http.MethodPost, "/admin/events", map[string]any{
		"title": "Concert", "date": "2024-06-01", "short_info": "Open air concert",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = e.get(t, "/events")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []eventJSON
	decodeData(t, rr, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Concert", list[0].Title)
	assert.Equal(t, "2024-06-01", list[0].Date)
	assert.Equal(t, "Fair", list[1].Title)

	t.Run("update", func(t *testing.T) {
		rr := e.admin(t, http.MethodPut, fmt.Sprintf("/admin/events/%d", fair.ID), map[string]any{
			"title": "Fair", "date": "2024-05-01", "short_info": "Moved to May",
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = e.get(t, "/events")
		decodeData(t, rr, &list)
		assert.Equal(t, "Fair", list[0].Title)
		assert.Equal(t, "Moved to May", list[0].ShortInfo)
	})

	t.Run("bad date", func(t *testing.T) {
		rr := e.admin(t, http.MethodPost, "/admin/events", map[string]any{
			"title": "X", "date": "01.06.2024", "short_info": "x",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := e.admin(t, http.MethodDelete, fmt.Sprintf("/admin/events/%d", fair.ID), nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var deleted deletedResponse
		decodeData(t, rr, &deleted)
		assert.Equal(t, deletedResponse{Status: "deleted", ID: fair.ID}, deleted)

		rr = e.admin(t, http.MethodDelete, fmt.Sprintf("/admin/events/%d", fair.ID), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGalleryUpload(t *testing.T) {
	e := newTestEnv(t)

	upload := func(section string) uploadedPhotoResponse {
		t.Helper()
		fields := map[string]string{}
		if section != "" {
			fields["section_name"] = section
		}
		rr := e.do(t, multipartRequest(t, "/gallery/upload", fields, "file", 1))
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var resp uploadedPhotoResponse
		decodeData(t, rr, &resp)
		return resp
	}

	first := upload("")
	assert.Equal(t, "general", first.SectionName)

	second := upload("general")
	assert.Equal(t, first.SectionID, second.SectionID)
	assert.NotEqual(t, first.ID, second.ID)

	parks := upload("Parks")
	assert.NotEqual(t, first.SectionID, parks.SectionID)

	rr := e.get(t, "/gallery")
	require.Equal(t, http.StatusOK, rr.Code)
	var sections []struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Photos []struct {
			URL string `json:"url"`
		} `json:"photos"`
	}
	decodeData(t, rr, &sections)
	require.Len(t, sections, 2)

	byName := map[string]int{}
	for _, s := range sections {
		byName[s.Name] = len(s.Photos)
	}
	assert.Equal(t, map[string]int{"general": 2, "Parks": 1}, byName)
	assert.Len(t, e.files.URLs(), 3)
}

func TestGalleryUpload_RequiresFile(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, multipartRequest(t, "/gallery/upload", map[string]string{"section_name": "Parks"}, "file", 0))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "file is required", decodeError(t, rr).Message)
	assert.Empty(t, e.store.Snapshot().Sections)
}

func TestGalleryUpload_StorageFailure(t *testing.T) {
	e := newTestEnv(t)
	e.store.FailOn = func(op string) error {
		if op == "gallery.AddPhoto" {
			return storagetest.ErrInjected
		}
		return nil
	}

	rr := e.do(t, multipartRequest(t, "/gallery/upload", map[string]string{"section_name": "Parks"}, "file", 1))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	assert.Empty(t, e.store.Snapshot().Sections)
	assert.Empty(t, e.files.URLs())
}

func TestGallerySectionsAdmin(t *testing.T) {
	e := newTestEnv(t)

	rr := e.admin(t, http.MethodPost, "/admin/gallery/sections", map[string]any{"name": "Parks"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var parks struct {
		ID int64 `json:"id"`
	}
	decodeData(t, rr, &parks)

	rr = e.admin(t, http.MethodPost, "/admin/gallery/sections", map[string]any{"name": "Parks"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = e.admin(t, http.MethodPost, "/admin/gallery/sections", map[string]any{"name": "Streets"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.admin(t, http.MethodPut, fmt.Sprintf("/admin/gallery/sections/%d", parks.ID), map[string]any{"name": "Streets"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = e.admin(t, http.MethodPut, fmt.Sprintf("/admin/gallery/sections/%d", parks.ID), map[string]any{"name": "Gardens"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = e.admin(t, http.MethodPost, "/admin/gallery/photos", map[string]any{"section_id": parks.ID, "url": "https://example.com/a.jpg"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var photo struct {
		ID int64 `json:"id"`
	}
	decodeData(t, rr, &photo)

	rr = e.admin(t, http.MethodPost, "/admin/gallery/photos", map[string]any{"section_id": 999, "url": "https://example.com/b.jpg"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = e.admin(t, http.MethodPost, "/admin/gallery/photos", map[string]any{"section_id": parks.ID, "url": "https://example.com/c.jpg"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.admin(t, http.MethodDelete, fmt.Sprintf("/admin/gallery/photos/%d", photo.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, e.store.Snapshot().GalleryPhotos, 1)

	rr = e.admin(t, http.MethodDelete, fmt.Sprintf("/admin/gallery/sections/%d", parks.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	st := e.store.Snapshot()
	assert.Len(t, st.Sections, 1)
	assert.Empty(t, st.GalleryPhotos)

	rr = e.admin(t, http.MethodDelete, fmt.Sprintf("/admin/gallery/sections/%d", parks.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFeedback(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{
		"name": "<i>Anna</i>", "contact": "  ", "message": "Please add more benches",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		ID      int64   `json:"id"`
		Name    string  `json:"name"`
		Contact *string `json:"contact"`
		IsRead  bool    `json:"is_read"`
	}
	decodeData(t, rr, &created)
	assert.Equal(t, "Anna", created.Name)
	assert.Nil(t, created.Contact)
	assert.False(t, created.IsRead)

	rr = e.do(t, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"name": "Anna"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "message is required")

	rr = e.do(t, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"name": "A", "message": "m", "extra": 1}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = e.admin(t, http.MethodPost, fmt.Sprintf("/admin/feedback/%d/mark_read", created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var read feedbackReadResponse
	decodeData(t, rr, &read)
	assert.Equal(t, feedbackReadResponse{ID: created.ID, IsRead: true}, read)

	rr = e.admin(t, http.MethodPost, "/admin/feedback/77/mark_read", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = e.admin(t, http.MethodGet, "/admin/feedback", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []struct {
		ID     int64 `json:"id"`
		IsRead bool  `json:"is_read"`
	}
	decodeData(t, rr, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
}

func TestRateLimiter(t *testing.T) {
	e := newTestEnv(t, withRateLimit(2))

	send := func() *httptest.ResponseRecorder {
		return e.do(t, jsonRequest(t, http.MethodPost, "/feedback", map[string]any{"name": "A", "message": "m"}))
	}

	assert.Equal(t, http.StatusCreated, send().Code)
	assert.Equal(t, http.StatusCreated, send().Code)

	rr := send()
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Len(t, e.store.Snapshot().Feedback, 2)

	// reads are not limited
	assert.Equal(t, http.StatusOK, e.get(t, "/events").Code)
}

func TestNav(t *testing.T) {
	e := newTestEnv(t)

	rr := e.get(t, "/nav?active=events")
	require.Equal(t, http.StatusOK, rr.Code)

	var items []navItem
	decodeData(t, rr, &items)
	require.Len(t, items, len(navItems))
	for _, item := range items {
		assert.Equal(t, item.ID == "events", item.IsActive, item.ID)
	}
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)

	rr := e.get(t, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var data map[string]string
	decodeData(t, rr, &data)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, version, data["version"])
}

func TestPlaces(t *testing.T) {
	e := newTestEnv(t)

	rr := e.admin(t, http.MethodPost, "/admin/places", map[string]any{"name": "  ", "category": "park", "lat": "1", "lng": "2"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "name is required")

	createPlace(t, e, "Bay Park")
	createPlace(t, e, "Theatre")

	rr = e.get(t, "/places")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []struct {
		Name string `json:"name"`
		Lat  string `json:"lat"`
	}
	decodeData(t, rr, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "56.1322", list[0].Lat)
}

func TestAdminToken(t *testing.T) {
	jwtAuth, err := auth.NewJWTAuthorizer("jwt-test-secret", "chebplace", time.Hour)
	require.NoError(t, err)

	e := newTestEnv(t, func(app *application) {
		app.config.auth.admin.mode = "jwt"
		app.tokens = jwtAuth
	})

	rr := e.do(t, httptest.NewRequest(http.MethodPost, "/auth/token", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.SetBasicAuth("ops", "ops-pass")
	rr = e.do(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var tok adminTokenResponse
	decodeData(t, rr, &tok)
	assert.Equal(t, int64(3600), tok.ExpiresIn)
	assert.True(t, strings.Count(tok.Token, ".") == 2)

	req = httptest.NewRequest(http.MethodGet, "/admin/feedback", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, e.do(t, req).Code)

	// the static key is not accepted in jwt mode
	assert.Equal(t, http.StatusUnauthorized, e.admin(t, http.MethodGet, "/admin/feedback", nil).Code)
}

func TestDebugVarsRequireBasicAuth(t *testing.T) {
	e := newTestEnv(t)

	rr := e.get(t, "/debug/vars")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.SetBasicAuth("ops", "ops-pass")
	assert.Equal(t, http.StatusOK, e.do(t, req).Code)
}
