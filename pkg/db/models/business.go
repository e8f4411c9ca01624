package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// Business represents a supplier-owned directory listing. A row with null
// coordinates never appears in geo search.
type Business struct {
	ID                 uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID             uuid.UUID                `gorm:"column:user_id;type:uuid;not null;index"`
	BusinessName       string                   `gorm:"column:business_name;not null"`
	Slug               string                   `gorm:"column:slug;not null"`
	Category           string                   `gorm:"column:category;not null"`
	Description        *string                  `gorm:"column:description"`
	Latitude           *float64                 `gorm:"column:latitude"`
	Longitude          *float64                 `gorm:"column:longitude"`
	AddressFormatted   *string                  `gorm:"column:address_formatted"`
	StreetAddress      *string                  `gorm:"column:street_address"`
	City               *string                  `gorm:"column:city"`
	PostalCode         *string                  `gorm:"column:postal_code"`
	Country            *string                  `gorm:"column:country"`
	GooglePlaceID      *string                  `gorm:"column:google_place_id"`
	Phone              *string                  `gorm:"column:phone"`
	Email              *string                  `gorm:"column:email"`
	Website            *string                  `gorm:"column:website"`
	FacebookURL        *string                  `gorm:"column:facebook_url"`
	InstagramURL       *string                  `gorm:"column:instagram_url"`
	TwitterURL         *string                  `gorm:"column:twitter_url"`
	LinkedInURL        *string                  `gorm:"column:linkedin_url"`
	TikTokURL          *string                  `gorm:"column:tiktok_url"`
	WhatsAppNumber     *string                  `gorm:"column:whatsapp_number"`
	OperatingHours     *string                  `gorm:"column:operating_hours"`
	VerificationStatus enums.VerificationStatus `gorm:"column:verification_status;type:verification_status;not null;default:'pending'"`
	IsActive           bool                     `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the row ID when the database default is unavailable.
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
