package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chebplace/internal/domain/events"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/params"

	"github.com/go-chi/chi/v5"
)

type eventPayload struct {
	Title     string  `json:"title" validate:"required,max=255"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	ShortInfo string  `json:"short_info" validate:"required,max=255,singleline"`
	CoverURL  *string `json:"cover_url" validate:"omitempty,max=2048"`
}

// readEvent decodes and validates an event payload.
func readEvent(w http.ResponseWriter, r *http.Request) (*events.Event, error) {
	var payload eventPayload
	if err := readJSON(w, r, &payload); err != nil {
		return nil, err
	}

	payload.Title = strings.TrimSpace(payload.Title)
	if payload.CoverURL != nil && strings.TrimSpace(*payload.CoverURL) == "" {
		payload.CoverURL = nil
	}

	if err := Validate.Struct(payload); err != nil {
		return nil, validationError(err)
	}

	date, err := time.Parse(events.DateLayout, payload.Date)
	if err != nil {
		return nil, fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}

	return &events.Event{
		Title:     payload.Title,
		Date:      date,
		ShortInfo: payload.ShortInfo,
		CoverURL:  payload.CoverURL,
	}, nil
}

// ListEvents godoc
//
//	@Summary		List events
//	@Description	All events ordered by date ascending
//	@Tags			events
//	@Produce		json
//	@Success		200	{array}		events.Event
//	@Failure		500	{object}	error
//	@Router			/events [get]
func (app *application) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	list, err := app.store.Repositories().Events.List(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// AdminListEvents godoc
//
//	@Summary		List events for editing
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		events.Event
//	@Failure		401	{object}	error
//	@Security		AdminKey
//	@Router			/admin/events [get]
func (app *application) adminListEventsHandler(w http.ResponseWriter, r *http.Request) {
	app.listEventsHandler(w, r)
}

// CreateEvent godoc
//
//	@Summary		Create an event
//	@Description	short_info must fit on one line
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		eventPayload	true	"Event"
//	@Success		201		{object}	events.Event
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		AdminKey
//	@Router			/admin/events [post]
func (app *application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := readEvent(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Events.Create(ctx, event); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// UpdateEvent godoc
//
//	@Summary		Replace an event
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int				true	"Event ID"
//	@Param			payload	body		eventPayload	true	"Event"
//	@Success		200		{object}	events.Event
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		AdminKey
//	@Router			/admin/events/{eventID} [put]
func (app *application) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := params.ParseID("event id", chi.URLParam(r, "eventID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := readEvent(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	event.ID = eventID

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Events.Update(ctx, event); err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

type deletedResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// DeleteEvent godoc
//
//	@Summary		Delete an event
//	@Tags			admin
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	deletedResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		AdminKey
//	@Router			/admin/events/{eventID} [delete]
func (app *application) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := params.ParseID("event id", chi.URLParam(r, "eventID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Events.Delete(ctx, eventID); err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, deletedResponse{Status: "deleted", ID: eventID}); err != nil {
		app.internalServerError(w, r, err)
	}
}
