package businesses

import (
	"time"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// BusinessDTO exposes a listing in API responses.
type BusinessDTO struct {
	ID                 uuid.UUID                `json:"id"`
	UserID             uuid.UUID                `json:"user_id"`
	BusinessName       string                   `json:"business_name"`
	Slug               string                   `json:"slug"`
	Category           string                   `json:"category"`
	Description        *string                  `json:"description,omitempty"`
	Latitude           *float64                 `json:"latitude,omitempty"`
	Longitude          *float64                 `json:"longitude,omitempty"`
	AddressFormatted   *string                  `json:"address_formatted,omitempty"`
	StreetAddress      *string                  `json:"street_address,omitempty"`
	City               *string                  `json:"city,omitempty"`
	PostalCode         *string                  `json:"postal_code,omitempty"`
	Country            *string                  `json:"country,omitempty"`
	GooglePlaceID      *string                  `json:"google_place_id,omitempty"`
	Phone              *string                  `json:"phone,omitempty"`
	Email              *string                  `json:"email,omitempty"`
	Website            *string                  `json:"website,omitempty"`
	FacebookURL        *string                  `json:"facebook_url,omitempty"`
	InstagramURL       *string                  `json:"instagram_url,omitempty"`
	TwitterURL         *string                  `json:"twitter_url,omitempty"`
	LinkedInURL        *string                  `json:"linkedin_url,omitempty"`
	TikTokURL          *string                  `json:"tiktok_url,omitempty"`
	WhatsAppNumber     *string                  `json:"whatsapp_number,omitempty"`
	OperatingHours     *string                  `json:"operating_hours,omitempty"`
	VerificationStatus enums.VerificationStatus `json:"verification_status"`
	IsActive           bool                     `json:"is_active"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// CreateBusinessInput captures the fields accepted at registration.
type CreateBusinessInput struct {
	UserID         uuid.UUID
	BusinessName   string
	Category       string
	Description    *string
	Latitude       *float64
	Longitude      *float64
	StreetAddress  *string
	City           *string
	PostalCode     *string
	Country        *string
	GooglePlaceID  *string
	Phone          *string
	Email          *string
	Website        *string
	FacebookURL    *string
	InstagramURL   *string
	TwitterURL     *string
	LinkedInURL    *string
	TikTokURL      *string
	WhatsAppNumber *string
	OperatingHours *string
}

// UpdateBusinessInput captures the mutable listing fields. BusinessName and
// Category keep their stored value when nil; every other field is written
// as provided, so an absent value clears the column.
type UpdateBusinessInput struct {
	BusinessName     *string
	Category         *string
	Description      *string
	Latitude         *float64
	Longitude        *float64
	AddressFormatted *string
	StreetAddress    *string
	City             *string
	PostalCode       *string
	Country          *string
	Phone            *string
	Email            *string
	Website          *string
	FacebookURL      *string
	InstagramURL     *string
	TwitterURL       *string
	LinkedInURL      *string
	TikTokURL        *string
	WhatsAppNumber   *string
	OperatingHours   *string
}

func FromModel(m *models.Business) *BusinessDTO {
	if m == nil {
		return nil
	}

	return &BusinessDTO{
		ID:                 m.ID,
		UserID:             m.UserID,
		BusinessName:       m.BusinessName,
		Slug:               m.Slug,
		Category:           m.Category,
		Description:        m.Description,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		AddressFormatted:   m.AddressFormatted,
		StreetAddress:      m.StreetAddress,
		City:               m.City,
		PostalCode:         m.PostalCode,
		Country:            m.Country,
		GooglePlaceID:      m.GooglePlaceID,
		Phone:              m.Phone,
		Email:              m.Email,
		Website:            m.Website,
		FacebookURL:        m.FacebookURL,
		InstagramURL:       m.InstagramURL,
		TwitterURL:         m.TwitterURL,
		LinkedInURL:        m.LinkedInURL,
		TikTokURL:          m.TikTokURL,
		WhatsAppNumber:     m.WhatsAppNumber,
		OperatingHours:     m.OperatingHours,
		VerificationStatus: m.VerificationStatus,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from the registration input.
func (c CreateBusinessInput) ToModel() *models.Business {
	return &models.Business{
		UserID:             c.UserID,
		BusinessName:       c.BusinessName,
		Slug:               Slugify(c.BusinessName),
		Category:           c.Category,
		Description:        c.Description,
		Latitude:           c.Latitude,
		Longitude:          c.Longitude,
		StreetAddress:      c.StreetAddress,
		City:               c.City,
		PostalCode:         c.PostalCode,
		Country:            c.Country,
		GooglePlaceID:      c.GooglePlaceID,
		Phone:              c.Phone,
		Email:              c.Email,
		Website:            c.Website,
		FacebookURL:        c.FacebookURL,
		InstagramURL:       c.InstagramURL,
		TwitterURL:         c.TwitterURL,
		LinkedInURL:        c.LinkedInURL,
		TikTokURL:          c.TikTokURL,
		WhatsAppNumber:     c.WhatsAppNumber,
		OperatingHours:     c.OperatingHours,
		VerificationStatus: enums.VerificationStatusPending,
		IsActive:           true,
	}
}
