package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// User represents the canonical identity entity. Rows are created lazily by
// the auth sync flow; firebase_uid is the join key for every external lookup.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirebaseUID string         `gorm:"column:firebase_uid;type:text;not null;uniqueIndex"`
	Email       string         `gorm:"type:text;not null;uniqueIndex"`
	FullName    string         `gorm:"column:full_name;not null"`
	Role        enums.UserRole `gorm:"column:role;type:user_role;not null;default:'consumer'"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the row ID when the database default is unavailable.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
