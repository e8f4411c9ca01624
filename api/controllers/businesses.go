package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/api/validators"
	"github.com/lokoloapp/lokolo-backend/internal/businesses"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

type createBusinessRequest struct {
	UserID         string   `json:"user_id" validate:"required,uuid4"`
	BusinessName   string   `json:"business_name" validate:"required,min=1"`
	Category       string   `json:"category" validate:"required,min=1"`
	Description    *string  `json:"description,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	StreetAddress  *string  `json:"street_address,omitempty"`
	City           *string  `json:"city,omitempty"`
	PostalCode     *string  `json:"postal_code,omitempty"`
	Country        *string  `json:"country,omitempty"`
	GooglePlaceID  *string  `json:"google_place_id,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	Website        *string  `json:"website,omitempty"`
	FacebookURL    *string  `json:"facebook_url,omitempty"`
	InstagramURL   *string  `json:"instagram_url,omitempty"`
	TwitterURL     *string  `json:"twitter_url,omitempty"`
	LinkedInURL    *string  `json:"linkedin_url,omitempty"`
	TikTokURL      *string  `json:"tiktok_url,omitempty"`
	WhatsAppNumber *string  `json:"whatsapp_number,omitempty"`
	OperatingHours *string  `json:"operating_hours,omitempty"`
}

func (r createBusinessRequest) toInput(userID uuid.UUID) businesses.CreateBusinessInput {
	return businesses.CreateBusinessInput{
		UserID:         userID,
		BusinessName:   r.BusinessName,
		Category:       r.Category,
		Description:    r.Description,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		StreetAddress:  r.StreetAddress,
		City:           r.City,
		PostalCode:     r.PostalCode,
		Country:        r.Country,
		GooglePlaceID:  r.GooglePlaceID,
		Phone:          r.Phone,
		Email:          r.Email,
		Website:        r.Website,
		FacebookURL:    r.FacebookURL,
		InstagramURL:   r.InstagramURL,
		TwitterURL:     r.TwitterURL,
		LinkedInURL:    r.LinkedInURL,
		TikTokURL:      r.TikTokURL,
		WhatsAppNumber: r.WhatsAppNumber,
		OperatingHours: r.OperatingHours,
	}
}

// BusinessCreate registers a new listing for the supplied owner.
func BusinessCreate(svc businesses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "businesses service unavailable"))
			return
		}

		var req createBusinessRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		dto, err := svc.Create(r.Context(), req.toInput(userID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// BusinessList returns the owner's listings, newest first.
func BusinessList(svc businesses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "businesses service unavailable"))
			return
		}

		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		listings, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listings)
	}
}

// BusinessGet returns one listing by ID.
func BusinessGet(svc businesses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "businesses service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "businessId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business id"))
			return
		}

		dto, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type updateBusinessRequest struct {
	BusinessName     *string  `json:"business_name,omitempty" validate:"omitempty,min=1"`
	Category         *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Description      *string  `json:"description,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	AddressFormatted *string  `json:"address_formatted,omitempty"`
	StreetAddress    *string  `json:"street_address,omitempty"`
	City             *string  `json:"city,omitempty"`
	PostalCode       *string  `json:"postal_code,omitempty"`
	Country          *string  `json:"country,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`
	Website          *string  `json:"website,omitempty"`
	FacebookURL      *string  `json:"facebook_url,omitempty"`
	InstagramURL     *string  `json:"instagram_url,omitempty"`
	TwitterURL       *string  `json:"twitter_url,omitempty"`
	LinkedInURL      *string  `json:"linkedin_url,omitempty"`
	TikTokURL        *string  `json:"tiktok_url,omitempty"`
	WhatsAppNumber   *string  `json:"whatsapp_number,omitempty"`
	OperatingHours   *string  `json:"operating_hours,omitempty"`
}

func (r updateBusinessRequest) toInput() businesses.UpdateBusinessInput {
	return businesses.UpdateBusinessInput{
		BusinessName:     r.BusinessName,
		Category:         r.Category,
		Description:      r.Description,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		AddressFormatted: r.AddressFormatted,
		StreetAddress:    r.StreetAddress,
		City:             r.City,
		PostalCode:       r.PostalCode,
		Country:          r.Country,
		Phone:            r.Phone,
		Email:            r.Email,
		Website:          r.Website,
		FacebookURL:      r.FacebookURL,
		InstagramURL:     r.InstagramURL,
		TwitterURL:       r.TwitterURL,
		LinkedInURL:      r.LinkedInURL,
		TikTokURL:        r.TikTokURL,
		WhatsAppNumber:   r.WhatsAppNumber,
		OperatingHours:   r.OperatingHours,
	}
}

// BusinessUpdate adjusts the mutable listing fields. Name and category keep
// their stored values when omitted; the other fields overwrite.
func BusinessUpdate(svc businesses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "businesses service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "businessId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business id"))
			return
		}

		var req updateBusinessRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// BusinessDelete removes the listing and its photos.
func BusinessDelete(svc businesses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "businesses service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "businessId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
