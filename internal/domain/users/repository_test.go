package users

import (
	"context"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-cms/internal/platform/logging"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:users-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.New(logging.Config{Level: "error"})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	return logger
}

func TestGetByUsernameMissing(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	user, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for missing user, got %+v", user)
	}
}

func TestEnsureAdminCreatesOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))
	logger := newTestLogger(t)

	seed := AdminSeed{Username: "admin", Password: "hunter2hunter2", Email: "admin@example.com"}
	if err := repo.EnsureAdmin(ctx, seed, logger); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}

	user, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if user == nil {
		t.Fatal("expected admin user to exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("stored hash does not match seed password: %v", err)
	}

	// Second call is a no-op.
	if err := repo.EnsureAdmin(ctx, seed, logger); err != nil {
		t.Fatalf("second EnsureAdmin error: %v", err)
	}
	var count int64
	if err := repo.db.Model(&User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user, got %d", count)
	}
}

func TestEnsureAdminGeneratesPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	seed := AdminSeed{Username: "admin", Email: "admin@example.com"}
	if err := repo.EnsureAdmin(ctx, seed, newTestLogger(t)); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}

	user, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if user == nil || user.Password == "" {
		t.Fatal("expected admin with a generated password hash")
	}
	// The literal empty password must not validate.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("")); err == nil {
		t.Fatal("empty password must not match the generated hash")
	}
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	seed := AdminSeed{Username: "admin", Password: "original-pass", Email: "admin@example.com"}
	if err := repo.EnsureAdmin(ctx, seed, newTestLogger(t)); err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	user, _ := repo.GetByUsername(ctx, "admin")

	hash, err := bcrypt.GenerateFromPassword([]byte("rotated-pass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		t.Fatalf("UpdatePassword error: %v", err)
	}

	updated, _ := repo.GetByID(ctx, user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("rotated-pass")); err != nil {
		t.Fatalf("rotated password does not match: %v", err)
	}
}
