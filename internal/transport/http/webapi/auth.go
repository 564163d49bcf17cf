package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/auth"
	"portfolio-cms/internal/domain/users"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

// AuthService exposes login and credential management over HTTP.
type AuthService struct {
	manager *auth.Manager
	users   *users.Repository
	logger  *logging.Logger
}

func NewAuthService(manager *auth.Manager, users *users.Repository, logger *logging.Logger) *AuthService {
	return &AuthService{
		manager: manager,
		users:   users,
		logger:  logger,
	}
}

// Start registers the auth routes.
func (s *AuthService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.POST("/auth/login", s.handleLogin)

	secured.GET("/auth/profile", s.handleProfile)
	secured.POST("/auth/change-password", s.handleChangePassword)

	s.logger.InfoTag("HTTP", "auth routes registered")
	return nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (s *AuthService) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	token, user, err := s.manager.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthenticationFailed) {
			// Same response whether the username or the password was wrong.
			httptransport.RespondError(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		s.logger.Error("login failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}

	httptransport.RespondSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	}, "login successful")
}

func (s *AuthService) handleProfile(c *gin.Context) {
	userID, ok := httptransport.UserID(c)
	if !ok {
		httptransport.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error("profile lookup failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if user == nil {
		httptransport.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	httptransport.RespondSuccess(c, http.StatusOK, user, "")
}

func (s *AuthService) handleChangePassword(c *gin.Context) {
	userID, ok := httptransport.UserID(c)
	if !ok {
		httptransport.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "old password and a new password of at least 8 characters are required", nil)
		return
	}

	err := s.manager.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrAuthenticationFailed) {
			httptransport.RespondError(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		s.logger.Error("change password failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}

	httptransport.RespondSuccess(c, http.StatusOK, nil, "password updated")
}
