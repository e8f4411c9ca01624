package businesses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
)

// Repository handles listing persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to business operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new business row.
func (r *Repository) Create(ctx context.Context, input CreateBusinessInput) (*models.Business, error) {
	business := input.ToModel()
	if err := r.db.WithContext(ctx).Create(business).Error; err != nil {
		return nil, err
	}
	return business, nil
}

// FindByID loads a business by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// FindByOwner returns the businesses owned by the provided user, newest
// first with a stable name tiebreak.
func (r *Repository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error) {
	var rows []models.Business
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC NULLS LAST").
		Order("business_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies the partial listing mutation. business_name and category
// use COALESCE so a nil value keeps the stored text; the remaining columns
// are written as given, clearing them when nil.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (int64, error) {
	updates := map[string]any{
		"business_name":     gorm.Expr("COALESCE(?, business_name)", input.BusinessName),
		"category":          gorm.Expr("COALESCE(?, category)", input.Category),
		"description":       input.Description,
		"latitude":          input.Latitude,
		"longitude":         input.Longitude,
		"address_formatted": input.AddressFormatted,
		"street_address":    input.StreetAddress,
		"city":              input.City,
		"postal_code":       input.PostalCode,
		"country":           input.Country,
		"phone":             input.Phone,
		"email":             input.Email,
		"website":           input.Website,
		"facebook_url":      input.FacebookURL,
		"instagram_url":     input.InstagramURL,
		"twitter_url":       input.TwitterURL,
		"linkedin_url":      input.LinkedInURL,
		"tiktok_url":        input.TikTokURL,
		"whatsapp_number":   input.WhatsAppNumber,
		"operating_hours":   input.OperatingHours,
	}
	result := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes the business row and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Business{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
