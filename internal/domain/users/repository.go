package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-cms/internal/platform/errors"
	"portfolio-cms/internal/platform/logging"
)

// Repository provides credential-store access backed by GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByUsername returns the user with the exact username, or nil when no
// row matches.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "users.get_by_username", "failed to query user", err)
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when no row matches.
func (r *Repository) GetByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "users.get_by_id", "failed to query user", err)
	}
	return &user, nil
}

// UpdatePassword replaces the stored hash for the given user.
func (r *Repository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("password", hash).Error
	if err != nil {
		return errors.Wrap(errors.KindStorage, "users.update_password", "failed to update password", err)
	}
	return nil
}

// AdminSeed describes the admin account created at first startup.
type AdminSeed struct {
	Username string
	Password string
	Email    string
}

// EnsureAdmin creates the admin account if it does not exist yet. When no
// password is configured a random one is generated and logged once, so a
// fresh deployment never ends up with a well-known credential.
func (r *Repository) EnsureAdmin(ctx context.Context, seed AdminSeed, logger *logging.Logger) error {
	existing, err := r.GetByUsername(ctx, seed.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	password := seed.Password
	generated := false
	if password == "" {
		raw := make([]byte, 16)
		if _, err := rand.Read(raw); err != nil {
			return errors.Wrap(errors.KindStorage, "users.ensure_admin", "failed to generate password", err)
		}
		password = hex.EncodeToString(raw)
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "users.ensure_admin", "failed to hash password", err)
	}

	user := &User{
		Username: seed.Username,
		Password: string(hash),
		Email:    seed.Email,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "users.ensure_admin", "failed to create admin user", err)
	}

	if generated {
		logger.Warn("admin account %q created with generated password %s, change it after first login", seed.Username, password)
	} else {
		logger.Info("admin account %q created", seed.Username)
	}
	return nil
}
