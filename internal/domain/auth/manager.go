package auth

import (
	"context"
	"errors"

	"portfolio-cms/internal/domain/users"
	platformerrors "portfolio-cms/internal/platform/errors"
	"portfolio-cms/internal/platform/logging"
)

// ErrAuthenticationFailed is returned for both unknown usernames and wrong
// passwords, so callers cannot enumerate accounts.
var ErrAuthenticationFailed = errors.New("authentication failed")

// UserStore is the slice of the credential store the manager needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	GetByID(ctx context.Context, id uint) (*users.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// Manager owns the login path: it is the only place a token is minted.
type Manager struct {
	store  UserStore
	codec  *Codec
	logger *logging.Logger
}

func NewManager(store UserStore, codec *Codec, logger *logging.Logger) *Manager {
	return &Manager{
		store:  store,
		codec:  codec,
		logger: logger,
	}
}

// Codec exposes the token codec, e.g. for the request gate.
func (m *Manager) Codec() *Codec {
	return m.codec
}

// Login verifies the credential pair and issues a token on success. The
// store lookup is the only blocking operation; token issuance is a pure
// computation.
func (m *Manager) Login(ctx context.Context, username, password string) (string, *users.User, error) {
	user, err := m.store.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, platformerrors.Wrap(platformerrors.KindStorage, "auth.login", "credential store lookup failed", err)
	}
	if user == nil {
		m.logger.Warn("login rejected: unknown username %q", username)
		return "", nil, ErrAuthenticationFailed
	}
	if !CheckPassword(user.Password, password) {
		m.logger.Warn("login rejected: wrong password for %q", username)
		return "", nil, ErrAuthenticationFailed
	}

	token, err := m.codec.Issue(user.ID)
	if err != nil {
		return "", nil, platformerrors.Wrap(platformerrors.KindAuth, "auth.login", "failed to issue token", err)
	}
	return token, user, nil
}

// ChangePassword rotates the credential of an already authenticated user.
func (m *Manager) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := m.store.GetByID(ctx, userID)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "auth.change_password", "credential store lookup failed", err)
	}
	if user == nil || !CheckPassword(user.Password, oldPassword) {
		return ErrAuthenticationFailed
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindAuth, "auth.change_password", "failed to hash password", err)
	}
	return m.store.UpdatePassword(ctx, userID, hash)
}
