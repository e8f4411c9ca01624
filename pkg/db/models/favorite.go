package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links a consumer to a saved business. The (user_id, business_id)
// pair is unique at the database level; duplicate inserts surface as a
// conflict instead of racing a pre-check.
type Favorite struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_favorites_user_business"`
	BusinessID uuid.UUID `gorm:"column:business_id;type:uuid;not null;uniqueIndex:idx_favorites_user_business"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns the row ID when the database default is unavailable.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
