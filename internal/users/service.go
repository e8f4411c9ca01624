package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lokoloapp/lokolo-backend/pkg/db"
	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

type userRepository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error)
	UpdateFullName(ctx context.Context, uid string, fullName string) (int64, error)
}

// Service exposes identity sync operations.
type Service interface {
	Sync(ctx context.Context, input SyncUserInput) (*UserDTO, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*UserDTO, error)
	UpdateFullName(ctx context.Context, uid string, fullName string) (*UserDTO, error)
}

type service struct {
	repo         userRepository
	syncFallback bool
	logg         *logger.Logger
}

// NewService builds a users service with the provided repository. When
// syncFallback is set, a failed sync degrades to a synthesized response
// instead of an error.
func NewService(repo userRepository, syncFallback bool, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, syncFallback: syncFallback, logg: logg}, nil
}

// Sync looks up the identity by firebase UID and lazily creates the row. An
// existing user is returned unchanged: name and role are never updated here.
func (s *service) Sync(ctx context.Context, input SyncUserInput) (*UserDTO, error) {
	uid := strings.TrimSpace(input.FirebaseUID)
	email := strings.TrimSpace(input.Email)
	if uid == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "firebase uid is required")
	}
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if input.Role != "" && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role").WithDetails(map[string]any{"role": string(input.Role)})
	}

	existing, err := s.repo.FindByFirebaseUID(ctx, uid)
	if err == nil {
		return FromModel(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return s.degrade(ctx, input, err)
	}

	created, err := s.repo.Create(ctx, CreateUserDTO{
		FirebaseUID: uid,
		Email:       email,
		FullName:    strings.TrimSpace(input.FullName),
		Role:        input.Role,
	})
	if err != nil {
		// A concurrent sync may have won the insert.
		if db.IsUniqueViolation(err, "") {
			if winner, findErr := s.repo.FindByFirebaseUID(ctx, uid); findErr == nil {
				return FromModel(winner), nil
			}
		}
		return s.degrade(ctx, input, err)
	}
	return FromModel(created), nil
}

func (s *service) degrade(ctx context.Context, input SyncUserInput, cause error) (*UserDTO, error) {
	if !s.syncFallback {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, cause, "sync user")
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{"firebase_uid": input.FirebaseUID})
		s.logg.Warn(logCtx, "users.sync.degraded")
	}

	role := input.Role
	if role == "" {
		role = enums.UserRoleConsumer
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(input.Email)
	}

	return &UserDTO{
		ID:          strings.TrimSpace(input.FirebaseUID),
		FirebaseUID: strings.TrimSpace(input.FirebaseUID),
		Email:       strings.TrimSpace(input.Email),
		FullName:    fullName,
		Role:        role,
		SyncPending: true,
	}, nil
}

func (s *service) GetByFirebaseUID(ctx context.Context, uid string) (*UserDTO, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "firebase uid is required")
	}

	user, err := s.repo.FindByFirebaseUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

func (s *service) UpdateFullName(ctx context.Context, uid string, fullName string) (*UserDTO, error) {
	uid = strings.TrimSpace(uid)
	fullName = strings.TrimSpace(fullName)
	if uid == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "firebase uid is required")
	}
	if fullName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}

	affected, err := s.repo.UpdateFullName(ctx, uid, fullName)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}

	return s.GetByFirebaseUID(ctx, uid)
}
