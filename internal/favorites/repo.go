package favorites

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// Repository encapsulates favorite persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts the favorite. The unique (user_id, business_id) constraint
// makes the insert race-free; a duplicate reports inserted == false
// without touching the existing row.
func (r *Repository) Add(ctx context.Context, userID, businessID uuid.UUID) (*models.Favorite, bool, error) {
	if userID == uuid.Nil || businessID == uuid.Nil {
		return nil, false, gorm.ErrInvalidValue
	}

	favorite := &models.Favorite{UserID: userID, BusinessID: businessID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "business_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return favorite, true, nil
}

// Remove deletes the pair if present and reports the affected count.
func (r *Repository) Remove(ctx context.Context, userID, businessID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}

// BusinessExists reports whether the target listing row is present.
func (r *Repository) BusinessExists(ctx context.Context, businessID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", businessID).
		Count(&count).Error
	return count > 0, err
}

const listSelect = `
f.id AS favorite_id,
f.created_at AS favorited_at,
b.id AS business_id,
b.business_name,
b.slug,
b.category,
b.description,
b.latitude,
b.longitude,
b.address_formatted,
b.city,
b.phone,
b.whatsapp_number,
bp.photo_url AS primary_photo_url`

// List returns the user's favorites joined with live business attributes,
// newest favorite first. Inactive listings are excluded.
func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]ListItemDTO, error) {
	var items []ListItemDTO
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select(listSelect).
		Joins("JOIN businesses b ON b.id = f.business_id").
		Joins("LEFT JOIN business_photos bp ON bp.business_id = b.id AND bp.is_primary").
		Where("f.user_id = ?", userID).
		Where("b.is_active = ?", true).
		Order("f.created_at DESC").
		Order("f.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
