package contact

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:contact-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Message{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewRepository(db)
}

func TestCreateAssignsReferenceAndSubject(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	msg := &Message{Name: "Alice", Email: "alice@example.com", Message: "Hi"}
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if msg.Reference == "" {
		t.Fatal("expected a generated reference")
	}
	if msg.Subject != "No subject" {
		t.Fatalf("expected default subject, got %q", msg.Subject)
	}
}

func TestReadLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	msg := &Message{Name: "Bob", Email: "bob@example.com", Subject: "Question", Message: "Hello"}
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	total, unread, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts error: %v", err)
	}
	if total != 1 || unread != 1 {
		t.Fatalf("expected 1 total/1 unread, got %d/%d", total, unread)
	}

	updated, err := repo.MarkRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if updated == nil || !updated.Read {
		t.Fatalf("expected message marked read, got %+v", updated)
	}

	_, unread, err = repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts error: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected no unread messages, got %d", unread)
	}

	missing, err := repo.MarkRead(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing id, got %+v, %v", missing, err)
	}

	existed, err := repo.Delete(ctx, msg.ID)
	if err != nil || !existed {
		t.Fatalf("Delete error: existed=%v err=%v", existed, err)
	}
}
