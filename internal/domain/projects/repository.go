package projects

import (
	"context"

	"gorm.io/gorm"

	"portfolio-cms/internal/platform/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all projects, newest first.
func (r *Repository) List(ctx context.Context) ([]Project, error) {
	var list []Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "projects.list", "failed to list projects", err)
	}
	return list, nil
}

// Get returns the project with the given id, or nil when no row matches.
func (r *Repository) Get(ctx context.Context, id uint) (*Project, error) {
	var project Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "projects.get", "failed to query project", err)
	}
	return &project, nil
}

func (r *Repository) Create(ctx context.Context, project *Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "projects.create", "failed to create project", err)
	}
	return nil
}

// Update overwrites a project's fields. Returns the updated row, or nil
// when the id does not exist.
func (r *Repository) Update(ctx context.Context, id uint, project *Project) (*Project, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	project.ID = id
	project.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, errors.Wrap(errors.KindStorage, "projects.update", "failed to update project", err)
	}
	return project, nil
}

// Delete removes a project, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Project{}, id)
	if result.Error != nil {
		return false, errors.Wrap(errors.KindStorage, "projects.delete", "failed to delete project", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count reports the total number of projects, for dashboard stats.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Project{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(errors.KindStorage, "projects.count", "failed to count projects", err)
	}
	return count, nil
}
