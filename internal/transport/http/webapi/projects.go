package webapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"portfolio-cms/internal/domain/projects"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

// ProjectService exposes the project CRUD surface. Reads are public,
// writes go through the request gate.
type ProjectService struct {
	repo   *projects.Repository
	logger *logging.Logger
}

func NewProjectService(repo *projects.Repository, logger *logging.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.GET("/projects", s.handleList)
	public.GET("/projects/:id", s.handleGet)

	secured.POST("/projects", s.handleCreate)
	secured.PUT("/projects/:id", s.handleUpdate)
	secured.DELETE("/projects/:id", s.handleDelete)

	s.logger.InfoTag("HTTP", "project routes registered")
	return nil
}

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"image_url"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

func (r *ProjectRequest) toModel() *projects.Project {
	return &projects.Project{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		ProjectURL:   r.ProjectURL,
		GithubURL:    r.GithubURL,
		Technologies: datatypes.NewJSONSlice(r.Technologies),
		Featured:     r.Featured,
	}
}

func (s *ProjectService) handleList(c *gin.Context) {
	list, err := s.repo.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list projects failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, list, "")
}

func (s *ProjectService) handleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := s.repo.Get(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("get project failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if project == nil {
		httptransport.RespondError(c, http.StatusNotFound, "project not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, project, "")
}

func (s *ProjectService) handleCreate(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "title and description are required", nil)
		return
	}

	project := req.toModel()
	if err := s.repo.Create(c.Request.Context(), project); err != nil {
		s.logger.Error("create project failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusCreated, project, "project created")
}

func (s *ProjectService) handleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "title and description are required", nil)
		return
	}

	project, err := s.repo.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		s.logger.Error("update project failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if project == nil {
		httptransport.RespondError(c, http.StatusNotFound, "project not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, project, "project updated")
}

func (s *ProjectService) handleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := s.repo.Delete(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("delete project failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !existed {
		httptransport.RespondError(c, http.StatusNotFound, "project not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, "project deleted")
}

// parseID reads the :id path parameter, writing a 400 on garbage input.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
