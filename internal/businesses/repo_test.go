package businesses

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBusinessesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS businesses (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  business_name TEXT NOT NULL,
  slug TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT,
  latitude REAL,
  longitude REAL,
  address_formatted TEXT,
  street_address TEXT,
  city TEXT,
  postal_code TEXT,
  country TEXT,
  google_place_id TEXT,
  phone TEXT,
  email TEXT,
  website TEXT,
  facebook_url TEXT,
  instagram_url TEXT,
  twitter_url TEXT,
  linkedin_url TEXT,
  tiktok_url TEXT,
  whatsapp_number TEXT,
  operating_hours TEXT,
  verification_status TEXT NOT NULL DEFAULT 'pending',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func strPtr(s string) *string { return &s }

func TestRepositoryCreateAndFind(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateBusinessInput{
		UserID:       uuid.New(),
		BusinessName: "Mama's Kitchen",
		Category:     "Food & Beverage",
		Description:  strPtr("Home cooking"),
	})
	require.NoError(t, err)
	assert.Equal(t, "mamas-kitchen", created.Slug)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.BusinessName, found.BusinessName)
	require.NotNil(t, found.Description)
	assert.Equal(t, "Home cooking", *found.Description)
}

func TestRepositoryAsymmetricUpdate(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateBusinessInput{
		UserID:       uuid.New(),
		BusinessName: "Original Name",
		Category:     "Retail",
		Description:  strPtr("Keep or clear"),
		Phone:        strPtr("+27 11 555 0001"),
	})
	require.NoError(t, err)

	// Nil name/category keep the stored values; nil description/phone
	// clear their columns.
	affected, err := repo.Update(ctx, created.ID, UpdateBusinessInput{
		Website: strPtr("https://example.com"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	row, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original Name", row.BusinessName)
	assert.Equal(t, "Retail", row.Category)
	assert.Nil(t, row.Description)
	assert.Nil(t, row.Phone)
	require.NotNil(t, row.Website)
	assert.Equal(t, "https://example.com", *row.Website)
}

func TestRepositoryUpdateKeepsSlugOnRename(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateBusinessInput{
		UserID:       uuid.New(),
		BusinessName: "Old Shop",
		Category:     "Retail",
	})
	require.NoError(t, err)
	require.Equal(t, "old-shop", created.Slug)

	_, err = repo.Update(ctx, created.ID, UpdateBusinessInput{
		BusinessName: strPtr("Brand New Shop"),
		Category:     strPtr("Services"),
	})
	require.NoError(t, err)

	row, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brand New Shop", row.BusinessName)
	assert.Equal(t, "old-shop", row.Slug, "slug is fixed at creation")
	assert.Equal(t, "Services", row.Category)
}

func TestRepositoryUpdateMissingRow(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)

	affected, err := repo.Update(context.Background(), uuid.New(), UpdateBusinessInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestRepositoryFindByOwnerOrdering(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	owner := uuid.New()

	names := []string{"Bravo Shop", "Alpha Shop", "Charlie Shop"}
	for _, name := range names {
		_, err := repo.Create(ctx, CreateBusinessInput{UserID: owner, BusinessName: name, Category: "Retail"})
		require.NoError(t, err)
	}
	// Force equal timestamps so the name tiebreak decides.
	require.NoError(t, conn.Exec(`UPDATE businesses SET created_at = '2025-01-01 00:00:00'`).Error)

	rows, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha Shop", rows[0].BusinessName)
	assert.Equal(t, "Bravo Shop", rows[1].BusinessName)
	assert.Equal(t, "Charlie Shop", rows[2].BusinessName)
}

func TestRepositoryDelete(t *testing.T) {
	conn := setupBusinessesTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateBusinessInput{UserID: uuid.New(), BusinessName: "Gone Soon", Category: "Retail"})
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
