package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/navarrastar/coming-soon/pkg/form"
	"github.com/navarrastar/coming-soon/pkg/i18n"
	"github.com/navarrastar/coming-soon/pkg/middleware"
	"github.com/navarrastar/coming-soon/pkg/models"
	"github.com/navarrastar/coming-soon/pkg/services"
	"github.com/navarrastar/coming-soon/pkg/web"
)

// Handlers contains all HTTP handlers for the site and the API
type Handlers struct {
	submissionService services.LeadSubmissionService
	logger            *slog.Logger
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LeadSubmissionService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		submissionService: submissionService,
		logger:            logger,
		now:               time.Now,
	}
}

// Register mounts the page, the submit endpoint and the health check.
// submitLimit, when non-nil, guards both submission routes.
func (h *Handlers) Register(r gin.IRouter, submitLimit gin.HandlerFunc) {
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if submitLimit == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{submitLimit, handler}
	}

	r.GET("/", h.HandleIndex)
	r.POST("/", limited(h.HandleFormPost)...)
	r.POST(form.SubmitPath, limited(h.HandleSubmit)...)
	r.GET("/health", h.HealthCheck)
	r.StaticFS("/static", web.Static())
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSubmit accepts a JSON lead and appends it to the spreadsheet
func (h *Handlers) HandleSubmit(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		h.logger.Warn("error parsing submit body", "request_id", middleware.GetRequestID(c), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if err := h.submissionService.SubmitLead(c.Request.Context(), lead); err != nil {
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": services.MsgSubmitted})
}

// HandleIndex renders the coming-soon page
func (h *Handlers) HandleIndex(c *gin.Context) {
	tag := h.resolveLanguage(c)
	st := form.New(h.submissionService.Models())
	render(c, http.StatusOK, web.ComingSoon(web.NewPageView(tag, st)))
}

// HandleFormPost is the no-JavaScript path: the browser posts the form
// and gets the page back with the outcome.
func (h *Handlers) HandleFormPost(c *gin.Context) {
	tag := h.resolveLanguage(c)

	var lead models.Lead
	if err := c.ShouldBind(&lead); err != nil {
		h.logger.Warn("error parsing form body", "request_id", middleware.GetRequestID(c), "error", err)
	}

	st := form.New(h.submissionService.Models())
	st.Set(form.FieldName, lead.Name)
	st.Set(form.FieldEmail, lead.Email)
	st.Set(form.FieldPhone, lead.Phone)
	st.Dropdown.Choose(lead.Model)

	status := http.StatusOK
	sub := &serviceSubmitter{service: h.submissionService}
	if err := form.Run(c.Request.Context(), st, sub, h.now); err != nil {
		status = http.StatusBadRequest
	} else if sub.status != 0 {
		status = sub.status
	}
	render(c, status, web.ComingSoon(web.NewPageView(tag, st)))
}

func (h *Handlers) resolveLanguage(c *gin.Context) language.Tag {
	tag, persist := i18n.ResolveTag(c.Request)
	if persist {
		i18n.SetLanguageCookie(c.Writer, tag)
	}
	return tag
}

// serviceSubmitter feeds the form state machine from the in-process service.
type serviceSubmitter struct {
	service services.LeadSubmissionService
	status  int
}

func (s *serviceSubmitter) Submit(ctx context.Context, lead models.Lead) form.Outcome {
	if err := s.service.SubmitLead(ctx, lead); err != nil {
		status, msg := errorResponse(err)
		s.status = status
		return form.Outcome{Message: msg}
	}
	return form.Outcome{OK: true, Message: services.MsgSubmitted}
}

// errorResponse maps a submission error to its HTTP status and public message.
func errorResponse(err error) (int, string) {
	var (
		verr *services.ValidationError
		cerr *services.ConfigurationError
		uerr *services.UpstreamError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.As(err, &cerr):
		return http.StatusInternalServerError, cerr.Message
	case errors.As(err, &uerr):
		return http.StatusInternalServerError, uerr.Message
	default:
		return http.StatusInternalServerError, services.MsgSubmitFailed
	}
}

// render writes a templ component to the response.
func render(c *gin.Context, status int, comp templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
