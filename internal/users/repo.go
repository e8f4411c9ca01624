package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByFirebaseUID retrieves the user matching the external identity key.
func (r *Repository) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFullName sets the display name for the identified user and reports
// whether a row was touched.
func (r *Repository) UpdateFullName(ctx context.Context, uid string, fullName string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("firebase_uid = ?", uid).
		UpdateColumn("full_name", fullName)
	return result.RowsAffected, result.Error
}
