package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessPhoto tracks an uploaded photo blob plus its storage key so the
// object can be removed when the row is. At most one photo per business
// carries is_primary.
type BusinessPhoto struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessID  uuid.UUID `gorm:"column:business_id;type:uuid;not null;index"`
	PhotoURL    string    `gorm:"column:photo_url;not null"`
	StoragePath string    `gorm:"column:storage_path;not null"`
	IsPrimary   bool      `gorm:"column:is_primary;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns the row ID when the database default is unavailable.
func (p *BusinessPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
