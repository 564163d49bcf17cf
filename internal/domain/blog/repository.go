package blog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	platformerrors "portfolio-cms/internal/platform/errors"
)

// ErrSlugTaken is returned when creating or renaming a post would collide
// with an existing slug.
var ErrSlugTaken = errors.New("slug already exists")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListPublished returns published posts, newest first.
func (r *Repository) ListPublished(ctx context.Context) ([]Post, error) {
	var list []Post
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindStorage, "blog.list_published", "failed to list posts", err)
	}
	return list, nil
}

// ListAll returns every post including drafts, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Post, error) {
	var list []Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindStorage, "blog.list_all", "failed to list posts", err)
	}
	return list, nil
}

// GetBySlug returns the post with the given slug, or nil when none matches.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, platformerrors.Wrap(platformerrors.KindStorage, "blog.get_by_slug", "failed to query post", err)
	}
	return &post, nil
}

func (r *Repository) Get(ctx context.Context, id uint) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, platformerrors.Wrap(platformerrors.KindStorage, "blog.get", "failed to query post", err)
	}
	return &post, nil
}

// Create inserts a post, failing with ErrSlugTaken when the slug is in use.
func (r *Repository) Create(ctx context.Context, post *Post) error {
	existing, err := r.GetBySlug(ctx, post.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	if post.Author == "" {
		post.Author = "Admin"
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "blog.create", "failed to create post", err)
	}
	return nil
}

// Update overwrites a post's fields. Returns the updated row, nil when the
// id does not exist, or ErrSlugTaken when renaming onto an existing slug.
func (r *Repository) Update(ctx context.Context, id uint, post *Post) (*Post, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if post.Slug != existing.Slug {
		conflict, err := r.GetBySlug(ctx, post.Slug)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, ErrSlugTaken
		}
	}

	post.ID = id
	post.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindStorage, "blog.update", "failed to update post", err)
	}
	return post, nil
}

// Delete removes a post, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Post{}, id)
	if result.Error != nil {
		return false, platformerrors.Wrap(platformerrors.KindStorage, "blog.delete", "failed to delete post", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Post{}).Count(&count).Error; err != nil {
		return 0, platformerrors.Wrap(platformerrors.KindStorage, "blog.count", "failed to count posts", err)
	}
	return count, nil
}
