package main

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"chebplace/internal/domain/reviews"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/media"
	"chebplace/internal/moderation"
	"chebplace/internal/params"

	"github.com/go-chi/chi/v5"
)

const (
	maxUploadSize   = 64 << 20 // whole multipart body
	multipartMemory = 32 << 20
)

type reviewStatusResponse struct {
	ID     int64          `json:"id"`
	Status reviews.Status `json:"status"`
}

// SubmitReview godoc
//
//	@Summary		Submit a review
//	@Description	Creates a pending review for a place with up to 5 photos. It becomes public once an admin approves it.
//	@Tags			reviews
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			place_id	formData	int		true	"Place ID"
//	@Param			author_name	formData	string	false	"Author name"
//	@Param			rating		formData	int		true	"Rating 1-5"
//	@Param			text		formData	string	true	"Review text"
//	@Param			files		formData	[]file	false	"Photos (up to 5)"
//	@Success		201			{object}	reviewStatusResponse
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		429			{object}	error
//	@Router			/reviews [post]
func (app *application) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	placeID, err := params.ParseID("place_id", r.FormValue("place_id"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rating, err := params.ParseInt("rating", r.FormValue("rating"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var author *string
	if values, ok := r.MultipartForm.Value["author_name"]; ok && len(values) > 0 {
		author = sanitizePtr(&values[0])
	}

	files, closeFiles, err := openUploads(r.MultipartForm.File["files"])
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer closeFiles()

	review, err := app.moderation.SubmitReview(r.Context(), moderation.ReviewInput{
		PlaceID:    placeID,
		AuthorName: author,
		Rating:     rating,
		Text:       sanitize(r.FormValue("text")),
		Photos:     files,
	})
	if err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	resp := reviewStatusResponse{ID: review.ID, Status: review.Status}
	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// openUploads opens every uploaded file. The returned func closes them all.
func openUploads(headers []*multipart.FileHeader) ([]media.File, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open file %q: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, media.File{Name: fh.Filename, Content: f})
	}
	return files, closeAll, nil
}

// ListReviews godoc
//
//	@Summary		List approved reviews
//	@Description	Approved reviews of a place, newest first. Pending reviews are never returned.
//	@Tags			reviews
//	@Produce		json
//	@Param			place_id	query		int	true	"Place ID"
//	@Success		200			{array}		reviews.Review
//	@Failure		400			{object}	error
//	@Router			/reviews [get]
func (app *application) listApprovedReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID, err := params.QueryID(r.URL.Query(), "place_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	list, err := app.moderation.ListApprovedReviews(ctx, placeID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListPendingReviews godoc
//
//	@Summary		List pending reviews
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		reviews.Review
//	@Failure		401	{object}	error
//	@Security		AdminKey
//	@Router			/admin/reviews/pending [get]
func (app *application) listPendingReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	list, err := app.moderation.ListPendingReviews(ctx, adminCredential(r))
	if err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ApproveReview godoc
//
//	@Summary		Approve a review
//	@Description	Makes a review public. Approving an approved review is a no-op.
//	@Tags			admin
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	reviewStatusResponse
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		AdminKey
//	@Router			/admin/reviews/{reviewID}/approve [post]
func (app *application) approveReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := params.ParseID("review id", chi.URLParam(r, "reviewID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	review, err := app.moderation.ApproveReview(ctx, adminCredential(r), reviewID)
	if err != nil {
		if errors.Is(err, dbx.ErrNotFound) {
			app.notFoundResponse(w, r, fmt.Errorf("review %d: %w", reviewID, err))
			return
		}
		app.writeStoreError(w, r, err)
		return
	}

	resp := reviewStatusResponse{ID: review.ID, Status: review.Status}
	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
