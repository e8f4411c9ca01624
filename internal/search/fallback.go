package search

import (
	"sort"
	"strings"

	"github.com/lokoloapp/lokolo-backend/pkg/geo"
)

func strptr(s string) *string { return &s }

// fallbackListings is the fixed Johannesburg dataset served when the
// database is unreachable. Distances are recomputed per query.
var fallbackListings = []ResultDTO{
	{
		ID:                 "mock-1",
		BusinessName:       "Ubuntu Coffee Shop",
		Category:           "Coffee Shop",
		Description:        strptr("Authentic African coffee experience"),
		Latitude:           -26.2041,
		Longitude:          28.0473,
		AddressFormatted:   strptr("123 Nelson Mandela Square, Sandton"),
		City:               strptr("Johannesburg"),
		Phone:              strptr("+27 11 123 4567"),
		Email:              strptr("info@ubuntucoffee.co.za"),
		WhatsAppNumber:     strptr("+27711234567"),
		VerificationStatus: "verified",
		IsActive:           true,
	},
	{
		ID:                 "mock-2",
		BusinessName:       "Kasi Kitchen",
		Category:           "Restaurant",
		Description:        strptr("Traditional South African cuisine"),
		Latitude:           -26.1950,
		Longitude:          28.0550,
		AddressFormatted:   strptr("45 Vilakazi Street, Soweto"),
		City:               strptr("Johannesburg"),
		Phone:              strptr("+27 11 234 5678"),
		Email:              strptr("hello@kasikitchen.co.za"),
		WhatsAppNumber:     strptr("+27712345678"),
		VerificationStatus: "verified",
		IsActive:           true,
	},
	{
		ID:                 "mock-3",
		BusinessName:       "Afro Hair Salon",
		Category:           "Beauty Salon",
		Description:        strptr("Specializing in natural hair care"),
		Latitude:           -26.2100,
		Longitude:          28.0400,
		AddressFormatted:   strptr("78 Rosebank Mall, Rosebank"),
		City:               strptr("Johannesburg"),
		Phone:              strptr("+27 11 345 6789"),
		Email:              strptr("bookings@afrohair.co.za"),
		WhatsAppNumber:     strptr("+27713456789"),
		VerificationStatus: "verified",
		IsActive:           true,
	},
}

// fallbackRadius applies the radius predicate to the fixed dataset with
// haversine distances, nearest first.
func fallbackRadius(input Input, limit int) []ResultDTO {
	results := make([]ResultDTO, 0, len(fallbackListings))
	for _, row := range fallbackListings {
		if input.Category != "" && row.Category != input.Category {
			continue
		}
		if !matchesQuery(row, input.Query) {
			continue
		}
		row.DistanceKM = geo.HaversineKM(input.Latitude, input.Longitude, row.Latitude, row.Longitude)
		if row.DistanceKM > input.RadiusKM {
			continue
		}
		results = append(results, row)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// fallbackLatest mirrors the coordinate-less listing.
func fallbackLatest(limit int) []ResultDTO {
	results := append([]ResultDTO(nil), fallbackListings...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matchesQuery(row ResultDTO, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	haystacks := []string{row.BusinessName, row.Category}
	if row.Description != nil {
		haystacks = append(haystacks, *row.Description)
	}
	if row.City != nil {
		haystacks = append(haystacks, *row.City)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}
