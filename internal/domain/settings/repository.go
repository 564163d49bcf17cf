package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio-cms/internal/platform/errors"
	"portfolio-cms/internal/platform/logging"
)

// Defaults seeded at first startup.
var defaults = map[string]string{
	"site_title":       "My Portfolio",
	"site_description": "Welcome to my portfolio",
	"theme_color":      "#6366f1",
	"theme_mode":       "light",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every setting as a flat key/value map.
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(errors.KindStorage, "settings.get_all", "failed to list settings", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Upsert writes each key/value pair, inserting or updating as needed.
func (r *Repository) Upsert(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&Setting{Key: key, Value: value}).Error
		if err != nil {
			return errors.Wrap(errors.KindStorage, "settings.upsert", "failed to upsert setting", err)
		}
	}
	return nil
}

// EnsureDefaults inserts the default settings, keeping existing values.
func (r *Repository) EnsureDefaults(ctx context.Context, logger *logging.Logger) error {
	for key, value := range defaults {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&Setting{Key: key, Value: value}).Error
		if err != nil {
			return errors.Wrap(errors.KindStorage, "settings.ensure_defaults", "failed to seed setting", err)
		}
	}
	logger.Debug("default settings ensured")
	return nil
}
