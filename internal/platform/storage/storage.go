package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/domain/projects"
	"portfolio-cms/internal/domain/settings"
	"portfolio-cms/internal/domain/skills"
	"portfolio-cms/internal/domain/users"
	"portfolio-cms/internal/platform/config"
	"portfolio-cms/internal/platform/errors"
	"portfolio-cms/internal/platform/storage/migrations"
)

// Open initializes the SQLite database: schema auto-migration first, then
// the versioned migrations on top.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.KindStorage, "storage.open", "failed to create data directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "storage.open", "failed to open database", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&projects.Project{},
		&blog.Post{},
		&skills.Skill{},
		&settings.Setting{},
		&contact.Message{},
		&MigrationRecord{},
	); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "storage.open", "failed to migrate schema", err)
	}

	manager := NewMigrationManager(db)
	manager.AddMigration(&migrations.Migration001Indexes{})
	if err := manager.RunMigrations(); err != nil {
		return nil, err
	}

	return db, nil
}
