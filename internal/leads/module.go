// Package leads provides the lead scoring bounded context module.
package leads

import (
	apphttp "directory_backend/internal/http"
	"directory_backend/internal/leads/handler"
	"directory_backend/internal/leads/repository"
	"directory_backend/internal/leads/service"
	"directory_backend/platform/db"
	"directory_backend/platform/logger"
	"directory_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its dependencies.
// engagement may be nil when Redis is not configured.
func NewModule(q db.Querier, engagement service.EngagementStore, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(q)
	svc := service.New(repo, engagement, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts lead scoring routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
