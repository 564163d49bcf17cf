package webapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/settings"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

// SettingService serves the site settings map. Reads are public so the
// front end can pick up theme values before anyone logs in.
type SettingService struct {
	repo   *settings.Repository
	logger *logging.Logger
}

func NewSettingService(repo *settings.Repository, logger *logging.Logger) *SettingService {
	return &SettingService{repo: repo, logger: logger}
}

func (s *SettingService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.GET("/settings", s.handleGetAll)
	secured.PUT("/settings", s.handleUpdate)

	s.logger.InfoTag("HTTP", "setting routes registered")
	return nil
}

func (s *SettingService) handleGetAll(c *gin.Context) {
	all, err := s.repo.GetAll(c.Request.Context())
	if err != nil {
		s.logger.Error("list settings failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, all, "")
}

func (s *SettingService) handleUpdate(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "expected a flat key/value object", nil)
		return
	}
	if len(updates) == 0 {
		httptransport.RespondError(c, http.StatusBadRequest, "no settings provided", nil)
		return
	}

	if err := s.repo.Upsert(c.Request.Context(), updates); err != nil {
		s.logger.Error("update settings failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, "settings updated")
}
