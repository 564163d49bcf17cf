package webapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/domain/projects"
	"portfolio-cms/internal/platform/logging"
	httptransport "portfolio-cms/internal/transport/http"
)

// AdminService serves the dashboard summary: content counts plus host
// resource usage.
type AdminService struct {
	projects *projects.Repository
	blog     *blog.Repository
	contact  *contact.Repository
	logger   *logging.Logger
}

func NewAdminService(
	projects *projects.Repository,
	blog *blog.Repository,
	contact *contact.Repository,
	logger *logging.Logger,
) *AdminService {
	return &AdminService{
		projects: projects,
		blog:     blog,
		contact:  contact,
		logger:   logger,
	}
}

func (s *AdminService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	secured.GET("/admin/stats", s.handleStats)

	s.logger.InfoTag("HTTP", "admin routes registered")
	return nil
}

func (s *AdminService) handleStats(c *gin.Context) {
	ctx := c.Request.Context()

	projectCount, err := s.projects.Count(ctx)
	if err != nil {
		s.logger.Error("count projects failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	postCount, err := s.blog.Count(ctx)
	if err != nil {
		s.logger.Error("count posts failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	messageCount, unreadCount, err := s.contact.Counts(ctx)
	if err != nil {
		s.logger.Error("count messages failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}

	httptransport.RespondSuccess(c, http.StatusOK, gin.H{
		"projects":        projectCount,
		"blog_posts":      postCount,
		"messages":        messageCount,
		"unread_messages": unreadCount,
		"cpu_usage":       cpuUsage(ctx),
		"memory_usage":    memoryUsage(),
	}, "")
}

func cpuUsage(ctx context.Context) string {
	percentages, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(percentages) == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", percentages[0])
}

func memoryUsage() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", vm.UsedPercent)
}
