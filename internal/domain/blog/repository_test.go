package blog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:blog-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Post{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewRepository(db)
}

func TestPublishedFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	published := &Post{Title: "Hello", Slug: "hello", Content: "body", Published: true}
	draft := &Post{Title: "Draft", Slug: "draft", Content: "body"}
	if err := repo.Create(ctx, published); err != nil {
		t.Fatalf("create published: %v", err)
	}
	if err := repo.Create(ctx, draft); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	visible, err := repo.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished error: %v", err)
	}
	if len(visible) != 1 || visible[0].Slug != "hello" {
		t.Fatalf("expected only the published post, got %+v", visible)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both posts, got %d", len(all))
	}
}

func TestSlugConflict(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.Create(ctx, &Post{Title: "One", Slug: "taken", Content: "body"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(ctx, &Post{Title: "Two", Slug: "taken", Content: "body"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	other := &Post{Title: "Other", Slug: "other", Content: "body"}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}
	renamed := &Post{Title: "Other", Slug: "taken", Content: "body"}
	if _, err := repo.Update(ctx, other.ID, renamed); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken on rename collision, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	post := &Post{Title: "Original", Slug: "post", Content: "body"}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(ctx, post.ID, &Post{
		Title:     "Updated",
		Slug:      "post",
		Content:   "new body",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "Updated" || !updated.Published {
		t.Fatalf("unexpected updated post: %+v", updated)
	}

	missing, err := repo.Update(ctx, 9999, &Post{Title: "X", Slug: "x", Content: "y"})
	if err != nil || missing != nil {
		t.Fatalf("expected nil result for missing id, got %+v, %v", missing, err)
	}

	existed, err := repo.Delete(ctx, post.ID)
	if err != nil || !existed {
		t.Fatalf("Delete error: existed=%v err=%v", existed, err)
	}
	existed, err = repo.Delete(ctx, post.ID)
	if err != nil || existed {
		t.Fatalf("second delete should report missing, existed=%v err=%v", existed, err)
	}

	if author := func() string {
		p := &Post{Title: "Anon", Slug: "anon", Content: "b"}
		_ = repo.Create(ctx, p)
		return p.Author
	}(); author != "Admin" {
		t.Fatalf("expected default author Admin, got %q", author)
	}
}
