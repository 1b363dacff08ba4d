// Package http holds what the router needs from the composition root: the
// modules to mount and the shared dependencies they are mounted with.
package http

import (
	"context"

	"directory_backend/platform/config"
	"directory_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module is a bounded context with its own routes.
type Module interface {
	// Name identifies the module in startup logs.
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext is handed to each module during route registration.
type RouterContext struct {
	// V1 is the rate-limited /api/v1 group.
	V1 *gin.RouterGroup
}

// RouterConfig is the slice of configuration the router reads.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// HealthChecker backs /api/health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App is assembled in cmd/api and passed to router.New.
type App struct {
	Config  RouterConfig
	Logger  *logger.Logger
	Health  HealthChecker
	Modules []Module
}
