package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"directory_backend/internal/leads/transport"
	"directory_backend/platform/httpkit"
	"directory_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// LeadService is the service surface the handler depends on.
type LeadService interface {
	Score(ctx context.Context, contactID string) (transport.LeadScoreResponse, error)
	Insights(ctx context.Context, contactID string) (transport.LeadInsightsResponse, error)
	CompanyLeads(ctx context.Context, companyID string, limit int) (transport.CompanyLeadsResponse, error)
	ScoreAdHoc(ctx context.Context, req transport.ScoreContactRequest) transport.LeadScoreResponse
	RecordInteraction(ctx context.Context, contactID string, at *time.Time) (transport.EngagementResponse, error)
}

// Handler handles HTTP requests for lead scoring.
type Handler struct {
	svc LeadService
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc LeadService, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers lead scoring routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts/:id/lead-score", h.GetLeadScore)
	rg.GET("/contacts/:id/lead-insights", h.GetLeadInsights)
	rg.POST("/contacts/:id/interactions", h.RecordInteraction)
	rg.GET("/companies/:id/top-leads", h.ListTopLeads)
	rg.POST("/lead-scores", h.ScoreContact)
}

func (h *Handler) GetLeadScore(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.svc.Score(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) GetLeadInsights(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.svc.Insights(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) RecordInteraction(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req transport.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.RecordInteraction(c.Request.Context(), id, req.At)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

func (h *Handler) ListTopLeads(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req transport.TopLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CompanyLeads(c.Request.Context(), id, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) ScoreContact(c *gin.Context) {
	var req transport.ScoreContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.ScoreAdHoc(c.Request.Context(), req))
}

func (h *Handler) pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := h.val.Var(id, "entityid"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return "", false
	}
	return id, true
}
