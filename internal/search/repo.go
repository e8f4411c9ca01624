package search

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Repository runs geography queries against Postgres/PostGIS. The distance
// math happens in SQL; rows with null coordinates never match.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to search queries.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const radiusQuery = `
SELECT
  id::text,
  business_name,
  category,
  description,
  latitude,
  longitude,
  address_formatted,
  city,
  phone,
  email,
  whatsapp_number,
  verification_status,
  is_active,
  created_at,
  ST_Distance(
    ST_MakePoint(longitude, latitude)::geography,
    ST_MakePoint(?, ?)::geography
  ) / 1000 AS distance_km
FROM businesses
WHERE
  is_active = true
  AND verification_status = 'verified'
  AND latitude IS NOT NULL
  AND longitude IS NOT NULL
  AND ST_DWithin(
    ST_MakePoint(longitude, latitude)::geography,
    ST_MakePoint(?, ?)::geography,
    ? * 1000
  )`

const latestQuery = `
SELECT
  id::text,
  business_name,
  category,
  description,
  latitude,
  longitude,
  address_formatted,
  city,
  phone,
  email,
  whatsapp_number,
  verification_status,
  is_active,
  created_at,
  0 AS distance_km
FROM businesses
WHERE
  is_active = true
  AND verification_status = 'verified'
ORDER BY created_at DESC
LIMIT ?`

// Radius returns verified active listings within the radius, nearest first.
func (r *Repository) Radius(ctx context.Context, input Input, limit int) ([]ResultDTO, error) {
	sql := radiusQuery
	args := []any{
		input.Longitude, input.Latitude,
		input.Longitude, input.Latitude,
		input.RadiusKM,
	}

	if input.Category != "" {
		sql += "\n  AND category = ?"
		args = append(args, input.Category)
	}
	if input.Query != "" {
		sql += "\n  AND (business_name ILIKE ? OR description ILIKE ? OR category ILIKE ? OR city ILIKE ?)"
		pattern := "%" + strings.TrimSpace(input.Query) + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	sql += "\nORDER BY distance_km ASC\nLIMIT ?"
	args = append(args, limit)

	var results []ResultDTO
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Latest returns verified active listings newest first, without distances.
func (r *Repository) Latest(ctx context.Context, limit int) ([]ResultDTO, error) {
	var results []ResultDTO
	if err := r.db.WithContext(ctx).Raw(latestQuery, limit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
