// Package api assembles the domain systems, their routes, and the OpenAPI
// document into the HTTP handler serving the public API.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/agent-hub/internal/config"
	"github.com/JaimeStill/agent-hub/internal/infrastructure"
	"github.com/JaimeStill/agent-hub/pkg/middleware"
	"github.com/JaimeStill/agent-hub/pkg/openapi"
)

// Module is the mounted API: domain routes behind the camelCase response
// normalizer, plus the rendered OpenAPI document describing them.
type Module struct {
	Handler http.Handler
	Spec    []byte
}

// NewModule wires every domain system onto a fresh mux.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.OpenAPI.Description)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}

	return &Module{
		Handler: middleware.CamelCase(runtime.Logger)(mux),
		Spec:    specBytes,
	}, nil
}
