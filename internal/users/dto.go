package users

import (
	"time"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// UserDTO is the transport shape for an identity row. ID is a string so a
// degraded sync response can echo the firebase UID before a row exists.
type UserDTO struct {
	ID          string         `json:"id"`
	FirebaseUID string         `json:"firebase_uid"`
	Email       string         `json:"email"`
	FullName    string         `json:"full_name"`
	Role        enums.UserRole `json:"role"`
	SyncPending bool           `json:"sync_pending,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SyncUserInput holds the identity payload pushed by the auth frontend.
type SyncUserInput struct {
	FirebaseUID string
	Email       string
	FullName    string
	Role        enums.UserRole
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	FirebaseUID string
	Email       string
	FullName    string
	Role        enums.UserRole
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:          u.ID.String(),
		FirebaseUID: u.FirebaseUID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.UserRoleConsumer
	}
	fullName := c.FullName
	if fullName == "" {
		fullName = c.Email
	}

	return &models.User{
		FirebaseUID: c.FirebaseUID,
		Email:       c.Email,
		FullName:    fullName,
		Role:        role,
	}
}
