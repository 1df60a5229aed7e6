package main

import (
	"github.com/JaimeStill/agent-hub/internal/config"
	"github.com/JaimeStill/agent-hub/internal/infrastructure"
	"github.com/JaimeStill/agent-hub/pkg/middleware"
)

// buildMiddleware creates the outer middleware stack. The first registered
// middleware sees the request first.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(infra.Logger))
	mw.Use(middleware.Metrics(infra.HTTPMetrics))
	mw.Use(middleware.CORS(&cfg.CORS))
	return mw
}
