package webapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/skills"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

type SkillService struct {
	repo   *skills.Repository
	logger *logging.Logger
}

func NewSkillService(repo *skills.Repository, logger *logging.Logger) *SkillService {
	return &SkillService{repo: repo, logger: logger}
}

func (s *SkillService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.GET("/skills", s.handleList)

	secured.POST("/skills", s.handleCreate)
	secured.PUT("/skills/:id", s.handleUpdate)
	secured.DELETE("/skills/:id", s.handleDelete)

	s.logger.InfoTag("HTTP", "skill routes registered")
	return nil
}

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

func (s *SkillService) handleList(c *gin.Context) {
	list, err := s.repo.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list skills failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, list, "")
}

func (s *SkillService) handleCreate(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	skill := &skills.Skill{Name: req.Name, Level: req.Level, Category: req.Category}
	if err := s.repo.Create(c.Request.Context(), skill); err != nil {
		s.logger.Error("create skill failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusCreated, skill, "skill created")
}

func (s *SkillService) handleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	skill, err := s.repo.Update(c.Request.Context(), id, &skills.Skill{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		s.logger.Error("update skill failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if skill == nil {
		httptransport.RespondError(c, http.StatusNotFound, "skill not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, skill, "skill updated")
}

func (s *SkillService) handleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := s.repo.Delete(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("delete skill failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !existed {
		httptransport.RespondError(c, http.StatusNotFound, "skill not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, "skill deleted")
}
