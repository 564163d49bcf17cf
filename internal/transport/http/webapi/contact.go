package webapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/contact"
	"portfolio-cms/internal/platform/logging"
	"portfolio-cms/internal/platform/mail"
	httptransport "portfolio-cms/internal/transport/http"
)

// ContactService takes public form submissions and gives the admin the
// inbox view.
type ContactService struct {
	repo     *contact.Repository
	notifier *mail.Notifier
	logger   *logging.Logger
}

func NewContactService(repo *contact.Repository, notifier *mail.Notifier, logger *logging.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *ContactService) Start(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.POST("/contact", s.handleSubmit)

	secured.GET("/contact", s.handleList)
	secured.PUT("/contact/:id/read", s.handleMarkRead)
	secured.DELETE("/contact/:id", s.handleDelete)

	s.logger.InfoTag("HTTP", "contact routes registered")
	return nil
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (s *ContactService) handleSubmit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "name, a valid email and a message are required", nil)
		return
	}

	msg := &contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Create(c.Request.Context(), msg); err != nil {
		s.logger.Error("store contact message failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}

	// Notification is best effort; a mail outage must not lose the message.
	if s.notifier.Enabled() {
		subject := fmt.Sprintf("Portfolio Contact: %s", msg.Subject)
		body := fmt.Sprintf(
			"New contact form submission\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s\n",
			msg.Name, msg.Email, msg.Subject, msg.Message,
		)
		if err := s.notifier.Notify(subject, body); err != nil {
			s.logger.Error("contact notification failed: %v", err)
		}
	}

	httptransport.RespondSuccess(c, http.StatusCreated, gin.H{"reference": msg.Reference}, "message sent")
}

func (s *ContactService) handleList(c *gin.Context) {
	list, err := s.repo.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list messages failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, list, "")
}

func (s *ContactService) handleMarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := s.repo.MarkRead(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("mark message read failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if msg == nil {
		httptransport.RespondError(c, http.StatusNotFound, "message not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, msg, "message marked as read")
}

func (s *ContactService) handleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existed, err := s.repo.Delete(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("delete message failed: %v", err)
		httptransport.RespondError(c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !existed {
		httptransport.RespondError(c, http.StatusNotFound, "message not found", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, nil, "message deleted")
}
