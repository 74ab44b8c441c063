package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chebplace/internal/domain/gallery"
	"chebplace/internal/domain/storage"
	"chebplace/internal/infra/dbx"
	"chebplace/internal/media"
	"chebplace/internal/params"

	"github.com/go-chi/chi/v5"
)

// ListGallery godoc
//
//	@Summary		List gallery
//	@Description	All sections with their photos nested
//	@Tags			gallery
//	@Produce		json
//	@Success		200	{array}		gallery.Section
//	@Failure		500	{object}	error
//	@Router			/gallery [get]
func (app *application) listGalleryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	sections, err := app.store.Repositories().Gallery.ListSections(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, sections); err != nil {
		app.internalServerError(w, r, err)
	}
}

type uploadedPhotoResponse struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	SectionID   int64  `json:"section_id"`
	SectionName string `json:"section_name"`
}

// UploadGalleryPhoto godoc
//
//	@Summary		Upload a gallery photo
//	@Description	Stores the file and attaches it to the section with the given name, creating the section if needed
//	@Tags			gallery
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file			formData	file	true	"Photo"
//	@Param			section_name	formData	string	false	"Section name (default general)"
//	@Success		201				{object}	uploadedPhotoResponse
//	@Failure		400				{object}	error
//	@Failure		429				{object}	error
//	@Router			/gallery/upload [post]
func (app *application) uploadGalleryPhotoHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 || headers[0].Filename == "" {
		app.badRequestResponse(w, r, errors.New("file is required"))
		return
	}
	if len(headers) > 1 {
		app.badRequestResponse(w, r, errors.New("only one file can be uploaded at a time"))
		return
	}

	sectionName := sanitize(r.FormValue("section_name"))
	if sectionName == "" {
		sectionName = gallery.DefaultSection
	}
	if len(sectionName) > 255 {
		app.badRequestResponse(w, r, errors.New("section_name must be at most 255 characters"))
		return
	}

	files, closeFiles, err := openUploads(headers)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer closeFiles()

	resp, err := app.storeGalleryUpload(r.Context(), sectionName, files[0])
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// storeGalleryUpload upserts the section, writes the file and then the photo
// row in one transaction. The file is removed again if the transaction does
// not commit.
func (app *application) storeGalleryUpload(ctx context.Context, sectionName string, file media.File) (*uploadedPhotoResponse, error) {
	var (
		resp  uploadedPhotoResponse
		saved string
	)

	err := app.store.WithTx(ctx, func(tx *storage.Repos) error {
		section, err := tx.Gallery.EnsureSection(ctx, sectionName)
		if err != nil {
			return err
		}

		url, err := app.media.Save(ctx, media.GalleryPhotos, section.ID, file)
		if err != nil {
			return fmt.Errorf("failed to store gallery photo: %w", err)
		}
		saved = url

		photo := &gallery.Photo{SectionID: section.ID, URL: url}
		if err := tx.Gallery.AddPhoto(ctx, photo); err != nil {
			return err
		}

		resp = uploadedPhotoResponse{
			ID:          photo.ID,
			URL:         photo.URL,
			SectionID:   section.ID,
			SectionName: section.Name,
		}
		return nil
	})
	if err != nil {
		if saved != "" {
			app.removeMedia(saved)
		}
		return nil, err
	}

	app.logger.Infow("gallery photo uploaded", "photo_id", resp.ID, "section_id", resp.SectionID)
	return &resp, nil
}

func (app *application) removeMedia(url string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.media.Remove(ctx, url); err != nil {
		app.logger.Warnw("failed to remove orphaned media file", "url", url, "error", err.Error())
	}
}

type sectionPayload struct {
	Name string `json:"name" validate:"required,max=255"`
}

func readSection(w http.ResponseWriter, r *http.Request) (string, error) {
	var payload sectionPayload
	if err := readJSON(w, r, &payload); err != nil {
		return "", err
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if err := Validate.Struct(payload); err != nil {
		return "", validationError(err)
	}
	return payload.Name, nil
}

// CreateGallerySection godoc
//
//	@Summary		Create a gallery section
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		sectionPayload	true	"Section"
//	@Success		201		{object}	gallery.Section
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		409		{object}	error	"Name already taken"
//	@Security		AdminKey
//	@Router			/admin/gallery/sections [post]
func (app *application) createGallerySectionHandler(w http.ResponseWriter, r *http.Request) {
	name, err := readSection(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	section := &gallery.Section{Name: name}
	if err := app.store.Repositories().Gallery.CreateSection(ctx, section); err != nil {
		if errors.Is(err, dbx.ErrConflict) {
			app.conflictResponse(w, r, fmt.Errorf("gallery section %q already exists", name))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, section); err != nil {
		app.internalServerError(w, r, err)
	}
}

// RenameGallerySection godoc
//
//	@Summary		Rename a gallery section
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			sectionID	path		int				true	"Section ID"
//	@Param			payload		body		sectionPayload	true	"Section"
//	@Success		200			{object}	gallery.Section
//	@Failure		400			{object}	error
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error	"Name already taken"
//	@Security		AdminKey
//	@Router			/admin/gallery/sections/{sectionID} [put]
func (app *application) renameGallerySectionHandler(w http.ResponseWriter, r *http.Request) {
	sectionID, err := params.ParseID("section id", chi.URLParam(r, "sectionID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	name, err := readSection(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	section, err := app.store.Repositories().Gallery.RenameSection(ctx, sectionID, name)
	if err != nil {
		if errors.Is(err, dbx.ErrConflict) {
			app.conflictResponse(w, r, fmt.Errorf("gallery section %q already exists", name))
			return
		}
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, section); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteGallerySection godoc
//
//	@Summary		Delete a gallery section
//	@Description	Removes the section and all of its photos
//	@Tags			admin
//	@Produce		json
//	@Param			sectionID	path		int	true	"Section ID"
//	@Success		200			{object}	deletedResponse
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		AdminKey
//	@Router			/admin/gallery/sections/{sectionID} [delete]
func (app *application) deleteGallerySectionHandler(w http.ResponseWriter, r *http.Request) {
	sectionID, err := params.ParseID("section id", chi.URLParam(r, "sectionID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := storage.DeleteGallerySection(ctx, app.store, sectionID); err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, deletedResponse{Status: "deleted", ID: sectionID}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type galleryPhotoPayload struct {
	SectionID int64  `json:"section_id" validate:"required,gt=0"`
	URL       string `json:"url" validate:"required,max=2048"`
}

// AddGalleryPhoto godoc
//
//	@Summary		Attach a photo by URL
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		galleryPhotoPayload	true	"Photo"
//	@Success		201		{object}	gallery.Photo
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error	"Section not found"
//	@Security		AdminKey
//	@Router			/admin/gallery/photos [post]
func (app *application) addGalleryPhotoHandler(w http.ResponseWriter, r *http.Request) {
	var payload galleryPhotoPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.URL = strings.TrimSpace(payload.URL)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, validationError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	photo := &gallery.Photo{SectionID: payload.SectionID, URL: payload.URL}
	if err := app.store.Repositories().Gallery.AddPhoto(ctx, photo); err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, photo); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteGalleryPhoto godoc
//
//	@Summary		Delete a gallery photo
//	@Tags			admin
//	@Produce		json
//	@Param			photoID	path		int	true	"Photo ID"
//	@Success		200		{object}	deletedResponse
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		AdminKey
//	@Router			/admin/gallery/photos/{photoID} [delete]
func (app *application) deleteGalleryPhotoHandler(w http.ResponseWriter, r *http.Request) {
	photoID, err := params.ParseID("photo id", chi.URLParam(r, "photoID"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbx.QueryTimeoutDuration)
	defer cancel()

	if err := app.store.Repositories().Gallery.DeletePhoto(ctx, photoID); err != nil {
		app.writeStoreError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, deletedResponse{Status: "deleted", ID: photoID}); err != nil {
		app.internalServerError(w, r, err)
	}
}
