package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

// BlogService exposes blog posts: published ones publicly, everything to
// the admin.
type BlogService struct {
	repo   *blog.Repository
	logger *logging.Logger
}

func NewBlogService(repo *blog.Repository, logger *logging.Logger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

func (s *BlogService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.GET("/blog", s.handleListPublished)
	public.GET("/blog/:slug", s.handleGetBySlug)

	// The draft-inclusive listing lives under /admin to keep /blog/:slug
	// free for public slugs.
	secured.GET("/admin/blog", s.handleListAll)
	secured.POST("/blog", s.handleCreate)
	secured.PUT("/blog/:slug", s.handleUpdate)
	secured.DELETE("/blog/:slug", s.handleDelete)

	s.logger.InfoTag("HTTP", "blog routes registered")
	return nil
}

type PostRequest struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Author        string `json:"author"`
	Published     bool   `json:"published"`
}

func (r *PostRequest) toModel() *blog.Post {
	return &blog.Post{
		Title:         r.Title,
		Slug:          r.Slug,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		Author:        r.Author,
		Published:     r.Published,
	}
}

func (s *BlogService) handleListPublished(c *gin.Context) {
	list, err := s.repo.ListPublished(c.Request.Context())
	if err != nil {
		s.logger.Error("list published posts failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, list, "")
}

func (s *BlogService) handleListAll(c *gin.Context) {
	list, err := s.repo.ListAll(c.Request.Context())
	if err != nil {
		s.logger.Error("list posts failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, list, "")
}

func (s *BlogService) handleGetBySlug(c *gin.Context) {
	post, err := s.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.logger.Error("get post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if post == nil {
		httptransport.RespondError(c, http.StatusNotFound, "blog post not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, post, "")
}

func (s *BlogService) handleCreate(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "title, slug and content are required", nil)
		return
	}

	post := req.toModel()
	if err := s.repo.Create(c.Request.Context(), post); err != nil {
		if errors.Is(err, blog.ErrSlugTaken) {
			httptransport.RespondError(c, http.StatusBadRequest, "slug already exists", nil)
			return
		}
		s.logger.Error("create post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusCreated, post, "blog post created")
}

func (s *BlogService) handleUpdate(c *gin.Context) {
	existing, err := s.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.logger.Error("get post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if existing == nil {
		httptransport.RespondError(c, http.StatusNotFound, "blog post not found", nil)
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "title, slug and content are required", nil)
		return
	}

	post, err := s.repo.Update(c.Request.Context(), existing.ID, req.toModel())
	if err != nil {
		if errors.Is(err, blog.ErrSlugTaken) {
			httptransport.RespondError(c, http.StatusBadRequest, "slug already exists", nil)
			return
		}
		s.logger.Error("update post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, post, "blog post updated")
}

func (s *BlogService) handleDelete(c *gin.Context) {
	existing, err := s.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.logger.Error("get post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if existing == nil {
		httptransport.RespondError(c, http.StatusNotFound, "blog post not found", nil)
		return
	}

	if _, err := s.repo.Delete(c.Request.Context(), existing.ID); err != nil {
		s.logger.Error("delete post failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, "blog post deleted")
}
