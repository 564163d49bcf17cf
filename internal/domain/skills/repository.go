package skills

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

func (r *Repository) List(ctx context.Context) ([]Skill, error) {
	var list []Skill
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "skills.list", "failed to list skills", err)
	}
	return list, nil
}

func (r *Repository) Get(ctx context.Context, id uint) (*Skill, error) {
	var skill Skill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "skills.get", "failed to query skill", err)
	}
	return &skill, nil
}

func (r *Repository) Create(ctx context.Context, skill *Skill) error {
	if skill.Level == "" {
		skill.Level = "Intermediate"
	}
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "skills.create", "failed to create skill", err)
	}
	return nil
}

// Update overwrites a skill's fields, returning nil when the id is missing.
func (r *Repository) Update(ctx context.Context, id uint, skill *Skill) (*Skill, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	skill.ID = id
	skill.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		return nil, errors.Wrap(errors.KindStorage, "skills.update", "failed to update skill", err)
	}
	return skill, nil
}

func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Skill{}, id)
	if result.Error != nil {
		return false, errors.Wrap(errors.KindStorage, "skills.delete", "failed to delete skill", result.Error)
	}
	return result.RowsAffected > 0, nil
}
