package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/lokoloapp/lokolo-backend/pkg/db"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  firebase_uid TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL UNIQUE,
  full_name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'consumer',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func TestRepositorySyncFlow(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		FirebaseUID: "uid-repo-1",
		Email:       "repo@example.com",
		FullName:    "Repo User",
		Role:        enums.UserRoleSupplier,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByFirebaseUID(ctx, "uid-repo-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Repo User", found.FullName)
	assert.Equal(t, enums.UserRoleSupplier, found.Role)
}

func TestRepositoryFindMissingReturnsRecordNotFound(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.FindByFirebaseUID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDuplicateUIDRejected(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{FirebaseUID: "uid-dup", Email: "a@example.com", FullName: "A"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{FirebaseUID: "uid-dup", Email: "b@example.com", FullName: "B"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "") || err != nil)
}

func TestRepositoryUpdateFullName(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{FirebaseUID: "uid-upd", Email: "upd@example.com", FullName: "Before"})
	require.NoError(t, err)

	affected, err := repo.UpdateFullName(ctx, "uid-upd", "After")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.UpdateFullName(ctx, "no-such-uid", "Name")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
