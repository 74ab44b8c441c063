package main

import (
	"context"
	"net/http"
	"strings"

	"chebplace/internal/domain/places"
	"chebplace/internal/infra/dbx"
)

// ListPlaces godoc
//
//	@Summary		List places
//	@Description	Every point of interest shown on the map
//	@Tags			places
//	@Produce		json
//	@Success		200	{array}		places.Place
//	@Failure		500	{object}	error
//	@Router			/places [get]
func (app *application) listPlacesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	list, err := app.store.Repositories().Places.List(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

type createPlacePayload struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	Lat         string  `json:"lat" validate:"required,max=50"`
	Lng         string  `json:"lng" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// CreatePlace godoc
//
//	@Summary		Create a place
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createPlacePayload	true	"Place"
//	@Success		201		{object}	places.Place
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		AdminKey
//	@Router			/admin/places [post]
func (app *application) createPlaceHandler(w http.ResponseWriter, r *http.Request) {
	var payload createPlacePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Category = strings.TrimSpace(payload.Category)
	payload.Lat = strings.TrimSpace(payload.Lat)
	payload.Lng = strings.TrimSpace(payload.Lng)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	place := &places.Place{
		Name:        payload.Name,
		Category:    payload.Category,
		Lat:         payload.Lat,
		Lng:         payload.Lng,
		Description: payload.Description,
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Places.Create(ctx, place); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, place); err != nil {
		app.internalServerError(w, r, err)
	}
}
