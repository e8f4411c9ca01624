package photos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// Repository encapsulates photo row persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a photos repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the photo row. When the row is primary, any existing primary
// for the same business is demoted in the same transaction so the partial
// unique index never sees two at once.
func (r *Repository) Create(ctx context.Context, photo *models.BusinessPhoto) (*models.BusinessPhoto, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if photo.IsPrimary {
			if err := tx.Model(&models.BusinessPhoto{}).
				Where("business_id = ? AND is_primary", photo.BusinessID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(photo).Error
	})
	if err != nil {
		return nil, err
	}
	return photo, nil
}

// FindByID loads one photo row or nil when absent.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.BusinessPhoto, error) {
	var photo models.BusinessPhoto
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByBusiness returns the gallery with the primary photo first.
func (r *Repository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.BusinessPhoto, error) {
	var rows []models.BusinessPhoto
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes one photo row and reports the affected count.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BusinessPhoto{})
	return result.RowsAffected, result.Error
}

// DeleteByBusiness removes every photo row for the business.
func (r *Repository) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&models.BusinessPhoto{})
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
