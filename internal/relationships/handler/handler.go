package handler

import (
	"context"
	"net/http"

	"directory_backend/internal/relationships/graph"
	"directory_backend/internal/relationships/transport"
	"directory_backend/platform/httpkit"
	"directory_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// GraphService is the service surface the handler depends on.
type GraphService interface {
	BuildRelationshipGraph(ctx context.Context, companyID string, opts graph.Options) (transport.RelationshipGraphResponse, error)
}

// Handler handles HTTP requests for company relationships.
type Handler struct {
	svc GraphService
	val *validator.Validator
}

// New creates a new relationships handler.
func New(svc GraphService, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers relationship routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies/:id/relationships", h.GetRelationships)
}

func (h *Handler) GetRelationships(c *gin.Context) {
	id := c.Param("id")
	if err := h.val.Var(id, "entityid"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.RelationshipsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	opts := graph.Options{IncludeContacts: true, Depth: req.Depth}
	if req.IncludeContacts != nil {
		opts.IncludeContacts = *req.IncludeContacts
	}

	result, err := h.svc.BuildRelationshipGraph(c.Request.Context(), id, opts)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
