package favorites

import (
	"time"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// FavoriteDTO is the bare saved-business link.
type FavoriteDTO struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	BusinessID uuid.UUID `json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListItemDTO joins the favorite with the current business attributes and
// its primary photo, if any.
type ListItemDTO struct {
	FavoriteID       uuid.UUID `json:"favorite_id" gorm:"column:favorite_id"`
	FavoritedAt      time.Time `json:"favorited_at" gorm:"column:favorited_at"`
	BusinessID       uuid.UUID `json:"business_id" gorm:"column:business_id"`
	BusinessName     string    `json:"business_name"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category"`
	Description      *string   `json:"description,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	AddressFormatted *string   `json:"address_formatted,omitempty"`
	City             *string   `json:"city,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	WhatsAppNumber   *string   `json:"whatsapp_number,omitempty" gorm:"column:whatsapp_number"`
	PrimaryPhotoURL  *string   `json:"primary_photo_url,omitempty" gorm:"column:primary_photo_url"`
}

// ConsumerItemDTO is the thin projection used by the consumer surface.
type ConsumerItemDTO struct {
	BusinessID      uuid.UUID `json:"business_id" gorm:"column:business_id"`
	BusinessName    string    `json:"business_name"`
	Category        string    `json:"category"`
	City            *string   `json:"city,omitempty"`
	PrimaryPhotoURL *string   `json:"primary_photo_url,omitempty" gorm:"column:primary_photo_url"`
	FavoritedAt     time.Time `json:"favorited_at" gorm:"column:favorited_at"`
}

// RemoveResult reports how many rows a removal touched; removing an absent
// favorite is a zero-effect success.
type RemoveResult struct {
	Deleted int64 `json:"deleted"`
}

func FromModel(f *models.Favorite) *FavoriteDTO {
	if f == nil {
		return nil
	}
	return &FavoriteDTO{
		ID:         f.ID,
		UserID:     f.UserID,
		BusinessID: f.BusinessID,
		CreatedAt:  f.CreatedAt,
	}
}
