// Package relationships provides the company relationship graph module.
package relationships

import (
	apphttp "directory_backend/internal/http"
	"directory_backend/internal/relationships/handler"
	"directory_backend/internal/relationships/repository"
	"directory_backend/internal/relationships/service"
	"directory_backend/platform/config"
	"directory_backend/platform/db"
	"directory_backend/platform/logger"
	"directory_backend/platform/validator"
)

// Module is the relationships bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the relationships module with all its dependencies.
func NewModule(q db.Querier, cfg config.GraphConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(q)
	svc := service.New(repo, log, cfg.GetGraphMaxDepth())
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "relationships"
}

// RegisterRoutes mounts relationship routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
