package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/pkg/enums"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
)

type dashboardRepository interface {
	CountBusinesses(ctx context.Context, userID uuid.UUID, status enums.VerificationStatus) (int64, error)
	CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Service exposes the supplier dashboard aggregates.
type Service interface {
	Stats(ctx context.Context, userID uuid.UUID) (*StatsDTO, error)
}

type service struct {
	repo dashboardRepository
}

// NewService constructs a dashboard service over the aggregate repo.
func NewService(repo dashboardRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*StatsDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	total, err := s.repo.CountBusinesses(ctx, userID, "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting businesses")
	}
	verified, err := s.repo.CountBusinesses(ctx, userID, enums.VerificationStatusVerified)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting verified businesses")
	}
	pending, err := s.repo.CountBusinesses(ctx, userID, enums.VerificationStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting pending businesses")
	}
	favorites, err := s.repo.CountFavorites(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting favorites")
	}

	return &StatsDTO{
		TotalBusinesses:    total,
		VerifiedBusinesses: verified,
		PendingBusinesses:  pending,
		TotalFavorites:     favorites,
	}, nil
}
