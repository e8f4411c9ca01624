package dashboard

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

// Repository aggregates supplier-facing counts.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a dashboard repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountBusinesses counts the owner's active listings, optionally restricted
// to one verification status.
func (r *Repository) CountBusinesses(ctx context.Context, userID uuid.UUID, status enums.VerificationStatus) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// CountFavorites counts favorites across the owner's active listings.
func (r *Repository) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Joins("JOIN businesses b ON b.id = f.business_id").
		Where("b.user_id = ? AND b.is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
