package search

import "time"

// Source labels where a search page came from, so clients can surface
// degraded results honestly.
const (
	SourceDatabase = "database"
	SourceFallback = "fallback"
)

// Input captures a radius query. Category and Query are optional filters;
// the "All Categories" sentinel is treated as no category filter.
type Input struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
	Category  string
	Query     string
}

// ResultDTO is one matched listing with its computed distance.
type ResultDTO struct {
	ID                 string     `json:"id"`
	BusinessName       string     `json:"business_name"`
	Category           string     `json:"category"`
	Description        *string    `json:"description,omitempty"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	AddressFormatted   *string    `json:"address_formatted,omitempty"`
	City               *string    `json:"city,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Email              *string    `json:"email,omitempty"`
	WhatsAppNumber     *string    `json:"whatsapp_number,omitempty" gorm:"column:whatsapp_number"`
	VerificationStatus string     `json:"verification_status"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	DistanceKM         float64    `json:"distance_km"`
}

// Page is a search response with its provenance marker.
type Page struct {
	Results []ResultDTO `json:"businesses"`
	Count   int         `json:"count"`
	Source  string      `json:"source"`
}
