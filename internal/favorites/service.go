package favorites

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
)

type favoriteRepository interface {
	Add(ctx context.Context, userID, businessID uuid.UUID) (*models.Favorite, bool, error)
	Remove(ctx context.Context, userID, businessID uuid.UUID) (int64, error)
	BusinessExists(ctx context.Context, businessID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]ListItemDTO, error)
}

// Service exposes saved-business operations.
type Service interface {
	Add(ctx context.Context, userID, businessID uuid.UUID) (*FavoriteDTO, error)
	Remove(ctx context.Context, userID, businessID uuid.UUID) (*RemoveResult, error)
	List(ctx context.Context, userID uuid.UUID) ([]ListItemDTO, error)
	ConsumerList(ctx context.Context, userID uuid.UUID) ([]ConsumerItemDTO, error)
}

type service struct {
	repo favoriteRepository
}

// NewService builds a favorites service with the provided repository.
func NewService(repo favoriteRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("favorites repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Add(ctx context.Context, userID, businessID uuid.UUID) (*FavoriteDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if businessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business id is required")
	}

	exists, err := s.repo.BusinessExists(ctx, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check business")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
	}

	favorite, inserted, err := s.repo.Add(ctx, userID, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add favorite")
	}
	if !inserted {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "business already favorited")
	}
	return FromModel(favorite), nil
}

func (s *service) Remove(ctx context.Context, userID, businessID uuid.UUID) (*RemoveResult, error) {
	if userID == uuid.Nil || businessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and business id are required")
	}

	deleted, err := s.repo.Remove(ctx, userID, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove favorite")
	}
	return &RemoveResult{Deleted: deleted}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]ListItemDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	return items, nil
}

func (s *service) ConsumerList(ctx context.Context, userID uuid.UUID) ([]ConsumerItemDTO, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]ConsumerItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, ConsumerItemDTO{
			BusinessID:      item.BusinessID,
			BusinessName:    item.BusinessName,
			Category:        item.Category,
			City:            item.City,
			PrimaryPhotoURL: item.PrimaryPhotoURL,
			FavoritedAt:     item.FavoritedAt,
		})
	}
	return result, nil
}
