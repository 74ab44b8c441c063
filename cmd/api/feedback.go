package main

import (
	"context"
	"net/http"

	"chebplace/internal/domain/feedback"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/params"

	"github.com/go-chi/chi/v5"
)

type createFeedbackPayload struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Contact *string `json:"contact" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required,max=5000"`
}

// CreateFeedback godoc
//
//	@Summary		Send feedback
//	@Tags			feedback
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createFeedbackPayload	true	"Feedback"
//	@Success		201		{object}	feedback.Feedback
//	@Failure		400		{object}	error
//	@Failure		429		{object}	error
//	@Router			/feedback [post]
func (app *application) createFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var payload createFeedbackPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Name = sanitize(payload.Name)
	payload.Contact = sanitizePtr(payload.Contact)
	payload.Message = sanitize(payload.Message)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	fb := &feedback.Feedback{
		Name:    payload.Name,
		Contact: payload.Contact,
		Message: payload.Message,
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Feedback.Create(ctx, fb); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.notifyFeedback(*fb)

	if err := app.jsonResponse(w, http.StatusCreated, fb); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListFeedback godoc
//
//	@Summary		List feedback
//	@Description	All feedback, newest first
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		feedback.Feedback
//	@Failure		401	{object}	error
//	@Security		AdminKey
//	@Router			/admin/feedback [get]
func (app *application) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	list, err := app.store.Repositories().Feedback.List(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

type feedbackReadResponse struct {
	ID     int64 `json:"id"`
	IsRead bool  `json:"is_read"`
}

// MarkFeedbackRead godoc
//
//	@Summary		Mark feedback as read
//	@Tags			admin
//	@Produce		json
//	@Param			feedbackID	path		int	true	"Feedback ID"
//	@Success		200			{object}	feedbackReadResponse
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		AdminKey
//	@Router			/admin/feedback/{feedbackID}/mark_read [post]
func (app *application) markFeedbackReadHandler(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := params.ParseID("feedback id", chi.URLParam(r, "feedbackID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	fb, err := app.store.Repositories().Feedback.MarkRead(ctx, feedbackID)
	if err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, feedbackReadResponse{ID: fb.ID, IsRead: fb.IsRead}); err != nil {
		app.internalServerError(w, r, err)
	}
}
