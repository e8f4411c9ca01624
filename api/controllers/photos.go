package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/internal/photos"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

// multipart forms are parsed with a fixed memory ceiling; larger files spill
// to temp storage before the service-side size check runs.
const multipartMemoryLimit = 32 << 20

// PhotoUpload accepts one multipart photo for a listing.
//
// Expected form fields: file (the image part), business_id, and an optional
// is_primary boolean.
func PhotoUpload(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "photos service unavailable"))
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		businessID, err := uuid.Parse(strings.TrimSpace(r.FormValue("business_id")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business id"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "photo file is required"))
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading photo file"))
			return
		}

		isPrimary, _ := strconv.ParseBool(strings.TrimSpace(r.FormValue("is_primary")))

		dto, err := svc.Upload(r.Context(), photos.UploadInput{
			BusinessID:  businessID,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
			IsPrimary:   isPrimary,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PhotoDelete removes one photo by the photo_id query parameter.
func PhotoDelete(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "photos service unavailable"))
			return
		}

		id, err := uuid.Parse(strings.TrimSpace(r.URL.Query().Get("photo_id")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid photo id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// PhotoList returns a listing's gallery, primary photo first.
func PhotoList(svc photos.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "photos service unavailable"))
			return
		}

		businessID, err := uuid.Parse(chi.URLParam(r, "businessId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business id"))
			return
		}

		gallery, err := svc.ListByBusiness(r.Context(), businessID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, gallery)
	}
}
