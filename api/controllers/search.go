package controllers

import (
	"net/http"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/api/validators"
	"github.com/lokoloapp/lokolo-backend/internal/search"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

// free-text and category terms are bounded before they reach the ILIKE
// filters.
const searchTermMaxLen = 200

type searchRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	RadiusKM  float64  `json:"radius,omitempty"`
	Category  string   `json:"category,omitempty"`
	Query     string   `json:"query,omitempty"`
}

// SearchRadius runs the geo query around the posted point.
func SearchRadius(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable"))
			return
		}

		var req searchRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.Search(r.Context(), search.Input{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			RadiusKM:  req.RadiusKM,
			Category:  validators.SanitizeString(req.Category, searchTermMaxLen),
			Query:     validators.SanitizeString(req.Query, searchTermMaxLen),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// SearchBrowse serves the query-less entry point. With coordinates it behaves
// like the radius search; without them it returns the newest verified
// listings.
func SearchBrowse(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable"))
			return
		}

		query := r.URL.Query()
		if query.Get("lat") == "" && query.Get("lng") == "" {
			page, err := svc.Latest(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, page)
			return
		}

		lat, err := validators.RequireQueryFloat(r, "lat", -90, 90)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lng, err := validators.RequireQueryFloat(r, "lng", -180, 180)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		radius, err := validators.ParseQueryFloat(r, "radius", 0, 0, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.Search(r.Context(), search.Input{
			Latitude:  lat,
			Longitude: lng,
			RadiusKM:  radius,
			Category:  validators.SanitizeString(query.Get("category"), searchTermMaxLen),
			Query:     validators.SanitizeString(query.Get("query"), searchTermMaxLen),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}
