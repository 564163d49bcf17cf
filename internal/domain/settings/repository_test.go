package settings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-cms/internal/platform/logging"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:settings-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Setting{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewRepository(db)
}

func TestEnsureDefaultsKeepsOverrides(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	logger, err := logging.New(logging.Config{Level: "error"})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}

	if err := repo.Upsert(ctx, map[string]string{"site_title": "Custom Title"}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := repo.EnsureDefaults(ctx, logger); err != nil {
		t.Fatalf("EnsureDefaults error: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if all["site_title"] != "Custom Title" {
		t.Fatalf("EnsureDefaults must not overwrite existing values, got %q", all["site_title"])
	}
	if all["theme_mode"] != "light" {
		t.Fatalf("expected seeded theme_mode, got %q", all["theme_mode"])
	}
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.Upsert(ctx, map[string]string{"theme_color": "#000000"}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := repo.Upsert(ctx, map[string]string{"theme_color": "#ffffff"}); err != nil {
		t.Fatalf("second Upsert error: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if all["theme_color"] != "#ffffff" {
		t.Fatalf("expected updated value, got %q", all["theme_color"])
	}
}
