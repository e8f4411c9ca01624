package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
	"github.com/lokoloapp/lokolo-backend/pkg/maps"
)

type businessRepository interface {
	Create(ctx context.Context, input CreateBusinessInput) (*models.Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]models.Business, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// PlaceResolver resolves Google place IDs to coordinates. A nil resolver
// disables enrichment.
type PlaceResolver interface {
	ResolvePlace(ctx context.Context, placeID string) (*maps.PlaceDetails, error)
}

// photoCleaner removes a business's photos (rows and blobs) ahead of the
// listing row itself.
type photoCleaner interface {
	DeleteForBusiness(ctx context.Context, businessID uuid.UUID) error
}

// Service exposes listing registry operations.
type Service interface {
	Create(ctx context.Context, input CreateBusinessInput) (*BusinessDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BusinessDTO, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]BusinessDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*BusinessDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   businessRepository
	places PlaceResolver
	photos photoCleaner
	logg   *logger.Logger
}

// NewService builds the registry service. The place resolver and photo
// cleaner are optional; a nil resolver skips address enrichment and a nil
// cleaner skips the photo cascade.
func NewService(repo businessRepository, places PlaceResolver, photos photoCleaner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("business repository required")
	}
	return &service{repo: repo, places: places, photos: photos, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, input CreateBusinessInput) (*BusinessDTO, error) {
	input.BusinessName = strings.TrimSpace(input.BusinessName)
	input.Category = strings.TrimSpace(input.Category)

	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.BusinessName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business name is required")
	}
	if input.Category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	s.enrichFromPlace(ctx, &input)

	business, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create business")
	}
	return FromModel(business), nil
}

// enrichFromPlace fills coordinates from the Google place when the caller
// supplied a place ID but no explicit location. Resolution failures are
// logged and ignored; registration never blocks on the Places API.
func (s *service) enrichFromPlace(ctx context.Context, input *CreateBusinessInput) {
	if s.places == nil || input.GooglePlaceID == nil {
		return
	}
	placeID := strings.TrimSpace(*input.GooglePlaceID)
	if placeID == "" || (input.Latitude != nil && input.Longitude != nil) {
		return
	}

	details, err := s.places.ResolvePlace(ctx, placeID)
	if err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{"google_place_id": placeID})
			s.logg.Warn(logCtx, "businesses.place_resolution.failed")
		}
		return
	}

	lat := details.Location.Latitude
	lng := details.Location.Longitude
	input.Latitude = &lat
	input.Longitude = &lng
	if details.FormattedAddress != "" && input.StreetAddress == nil {
		addr := details.FormattedAddress
		input.StreetAddress = &addr
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*BusinessDTO, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load business")
	}
	return FromModel(business), nil
}

func (s *service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]BusinessDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	rows, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list businesses")
	}

	result := make([]BusinessDTO, 0, len(rows))
	for i := range rows {
		result = append(result, *FromModel(&rows[i]))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBusinessInput) (*BusinessDTO, error) {
	if input.BusinessName != nil && strings.TrimSpace(*input.BusinessName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business name cannot be empty")
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category cannot be empty")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update business")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if s.photos != nil {
		if err := s.photos.DeleteForBusiness(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete business photos")
		}
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete business")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return pkgerrors.New(pkgerrors.CodeValidation, "latitude and longitude must be provided together")
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 {
		return pkgerrors.New(pkgerrors.CodeValidation, "latitude out of range")
	}
	if *lng < -180 || *lng > 180 {
		return pkgerrors.New(pkgerrors.CodeValidation, "longitude out of range")
	}
	return nil
}
