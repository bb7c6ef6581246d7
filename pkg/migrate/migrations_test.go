package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("validate shipped migrations: %v", err)
	}
}

func TestContentMigrationContainsOrderedTables(t *testing.T) {
	content := readMigration(t, "*_create_content_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS carousel_images",
		"CREATE TABLE IF NOT EXISTS team_members",
		"CREATE TABLE IF NOT EXISTS faq_items",
		"CREATE TABLE IF NOT EXISTS company_values",
		"CREATE TABLE IF NOT EXISTS milestones",
		"CREATE TABLE IF NOT EXISTS contact_items",
		"position INTEGER NOT NULL CHECK (position >= 1)",
		"DROP TABLE IF EXISTS carousel_images",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestShopsMigrationContainsStaffCascade(t *testing.T) {
	content := readMigration(t, "*_create_shops_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS shops",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_shops_slug",
		"CREATE TABLE IF NOT EXISTS staff_members",
		"FOREIGN KEY (shop_id) REFERENCES shops(id) ON DELETE CASCADE",
		"DROP TABLE IF EXISTS staff_members",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProductsMigrationContainsPriceConstraint(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"price NUMERIC(10,2) NOT NULL CHECK (price >= 0)",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCreateSQLMigrationWritesGooseTemplate(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Something New!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_something_new.sql") {
		t.Fatalf("unexpected filename: %s", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration failed validation: %v", err)
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
