package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lokoloapp/lokolo-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestFavoritesMigrationEnforcesUniqueness(t *testing.T) {
	content := readMigration(t, "*_create_favorites.sql")

	checks := []string{
		"UNIQUE (user_id, business_id)",
		"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE",
		"FOREIGN KEY (business_id) REFERENCES businesses(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS favorites",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestBusinessesMigrationHasGeographyIndex(t *testing.T) {
	content := readMigration(t, "*_create_businesses.sql")

	checks := []string{
		"CREATE EXTENSION IF NOT EXISTS postgis",
		"USING GIST",
		"::geography",
		"WHERE latitude IS NOT NULL AND longitude IS NOT NULL",
		"CHECK (latitude IS NULL OR (latitude BETWEEN -90 AND 90))",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPhotosMigrationLimitsPrimaries(t *testing.T) {
	content := readMigration(t, "*_create_business_photos.sql")

	if !strings.Contains(content, "CREATE UNIQUE INDEX IF NOT EXISTS idx_business_photos_primary") {
		t.Error("missing partial unique index on is_primary")
	}
	if !strings.Contains(content, "WHERE is_primary") {
		t.Error("primary index is not partial")
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one migration matching %q, got %d", pattern, len(matches))
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
