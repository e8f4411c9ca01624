package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokoloapp/lokolo-backend/pkg/enums"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
)

type stubDashboardRepo struct {
	countBusinessesFn func(ctx context.Context, userID uuid.UUID, status enums.VerificationStatus) (int64, error)
	countFavoritesFn  func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (s *stubDashboardRepo) CountBusinesses(ctx context.Context, userID uuid.UUID, status enums.VerificationStatus) (int64, error) {
	return s.countBusinessesFn(ctx, userID, status)
}

func (s *stubDashboardRepo) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.countFavoritesFn(ctx, userID)
}

func TestStatsAggregatesCounts(t *testing.T) {
	userID := uuid.New()
	repo := &stubDashboardRepo{
		countBusinessesFn: func(_ context.Context, gotUser uuid.UUID, status enums.VerificationStatus) (int64, error) {
			require.Equal(t, userID, gotUser)
			switch status {
			case "":
				return 5, nil
			case enums.VerificationStatusVerified:
				return 3, nil
			case enums.VerificationStatusPending:
				return 2, nil
			}
			t.Fatalf("unexpected status %q", status)
			return 0, nil
		},
		countFavoritesFn: func(_ context.Context, gotUser uuid.UUID) (int64, error) {
			require.Equal(t, userID, gotUser)
			return 17, nil
		},
	}

	svc, err := NewService(repo)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, &StatsDTO{
		TotalBusinesses:    5,
		VerifiedBusinesses: 3,
		PendingBusinesses:  2,
		TotalFavorites:     17,
	}, stats)
}

func TestStatsRequiresUserID(t *testing.T) {
	svc, err := NewService(&stubDashboardRepo{})
	require.NoError(t, err)

	_, err = svc.Stats(context.Background(), uuid.Nil)
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestStatsSurfacesRepoErrors(t *testing.T) {
	repo := &stubDashboardRepo{
		countBusinessesFn: func(context.Context, uuid.UUID, enums.VerificationStatus) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.Stats(context.Background(), uuid.New())
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, pkgerrors.CodeDependency, coded.Code())
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}
