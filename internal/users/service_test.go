package users

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
)

type stubUserRepo struct {
	existing  *models.User
	findErr   error
	created   *CreateUserDTO
	createErr error
	affected  int64
	updateErr error
}

func (s *stubUserRepo) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	s.created = &dto
	if s.createErr != nil {
		return nil, s.createErr
	}
	model := dto.ToModel()
	model.ID = uuid.New()
	return model, nil
}

func (s *stubUserRepo) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.existing, nil
}

func (s *stubUserRepo) UpdateFullName(ctx context.Context, uid string, fullName string) (int64, error) {
	if s.updateErr != nil {
		return 0, s.updateErr
	}
	if s.affected > 0 && s.existing != nil {
		s.existing.FullName = fullName
	}
	return s.affected, nil
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil, true, nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestSyncReturnsExistingUnchanged(t *testing.T) {
	existing := &models.User{
		ID:          uuid.New(),
		FirebaseUID: "uid-1",
		Email:       "old@example.com",
		FullName:    "Old Name",
		Role:        enums.UserRoleSupplier,
	}
	repo := &stubUserRepo{existing: existing}
	svc, err := NewService(repo, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Sync(context.Background(), SyncUserInput{
		FirebaseUID: "uid-1",
		Email:       "new@example.com",
		FullName:    "New Name",
		Role:        enums.UserRoleConsumer,
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if dto.FullName != "Old Name" || dto.Role != enums.UserRoleSupplier {
		t.Fatalf("existing user must be returned unchanged, got %+v", dto)
	}
	if repo.created != nil {
		t.Fatal("sync must not insert when the user exists")
	}
	if dto.SyncPending {
		t.Fatal("sync_pending must be false for a persisted user")
	}
}

func TestSyncCreatesWithDefaults(t *testing.T) {
	repo := &stubUserRepo{}
	svc, err := NewService(repo, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Sync(context.Background(), SyncUserInput{
		FirebaseUID: "uid-2",
		Email:       "fresh@example.com",
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if dto.Role != enums.UserRoleConsumer {
		t.Fatalf("expected default role consumer, got %q", dto.Role)
	}
	if dto.FullName != "fresh@example.com" {
		t.Fatalf("expected full name defaulted to email, got %q", dto.FullName)
	}
}

func TestSyncValidatesInput(t *testing.T) {
	svc, err := NewService(&stubUserRepo{}, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cases := []SyncUserInput{
		{Email: "x@example.com"},
		{FirebaseUID: "uid"},
		{FirebaseUID: "uid", Email: "x@example.com", Role: "ghost"},
	}
	for _, input := range cases {
		_, gotErr := svc.Sync(context.Background(), input)
		if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %+v, got %v", input, gotErr)
		}
	}
}

func TestSyncDegradesWhenFallbackEnabled(t *testing.T) {
	repo := &stubUserRepo{findErr: errors.New("connection refused")}
	svc, err := NewService(repo, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Sync(context.Background(), SyncUserInput{
		FirebaseUID: "uid-3",
		Email:       "down@example.com",
	})
	if err != nil {
		t.Fatalf("sync should degrade, got %v", err)
	}
	if !dto.SyncPending {
		t.Fatal("expected sync_pending marker")
	}
	if dto.ID != "uid-3" {
		t.Fatalf("degraded id must echo the firebase uid, got %q", dto.ID)
	}
	if dto.Role != enums.UserRoleConsumer {
		t.Fatalf("expected default role, got %q", dto.Role)
	}
}

func TestSyncSurfacesErrorWhenFallbackDisabled(t *testing.T) {
	repo := &stubUserRepo{findErr: errors.New("connection refused")}
	svc, err := NewService(repo, false, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Sync(context.Background(), SyncUserInput{FirebaseUID: "uid-4", Email: "down@example.com"})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}

func TestSyncRecoversFromConcurrentInsert(t *testing.T) {
	winner := &models.User{ID: uuid.New(), FirebaseUID: "uid-5", Email: "raced@example.com", FullName: "Raced", Role: enums.UserRoleConsumer}

	// First lookup misses, insert conflicts, second lookup sees the winner.
	raced := false
	repo := &racingUserRepo{inner: &stubUserRepo{}, winner: winner, raced: &raced}
	svc, err := NewService(repo, false, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Sync(context.Background(), SyncUserInput{FirebaseUID: "uid-5", Email: "raced@example.com"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if dto.ID != winner.ID.String() {
		t.Fatalf("expected the winning row, got %+v", dto)
	}
}

type racingUserRepo struct {
	inner  *stubUserRepo
	winner *models.User
	raced  *bool
}

func (r *racingUserRepo) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	*r.raced = true
	return nil, errors.New(`duplicate key value violates unique constraint "idx_users_firebase_uid"`)
}

func (r *racingUserRepo) FindByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	if *r.raced {
		return r.winner, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *racingUserRepo) UpdateFullName(ctx context.Context, uid string, fullName string) (int64, error) {
	return r.inner.UpdateFullName(ctx, uid, fullName)
}

func TestGetByFirebaseUIDNotFound(t *testing.T) {
	svc, err := NewService(&stubUserRepo{}, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByFirebaseUID(context.Background(), "missing")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}

func TestUpdateFullName(t *testing.T) {
	existing := &models.User{ID: uuid.New(), FirebaseUID: "uid-6", Email: "u@example.com", FullName: "Before", Role: enums.UserRoleConsumer}
	repo := &stubUserRepo{existing: existing, affected: 1}
	svc, err := NewService(repo, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.UpdateFullName(context.Background(), "uid-6", "After")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.FullName != "After" {
		t.Fatalf("expected updated name, got %q", dto.FullName)
	}
}

func TestUpdateFullNameNotFound(t *testing.T) {
	repo := &stubUserRepo{affected: 0}
	svc, err := NewService(repo, true, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.UpdateFullName(context.Background(), "missing", "Name")
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}
