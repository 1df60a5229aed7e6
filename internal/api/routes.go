package api

import (
	"net/http"

	"github.com/JaimeStill/agent-hub/internal/agents"
	"github.com/JaimeStill/agent-hub/pkg/openapi"
	"github.com/JaimeStill/agent-hub/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	agentsHandler := agents.NewHandler(domain.Agents, runtime.Logger, runtime.MaxBodySize)

	spec.Components.AddSchemas(agents.Spec.Schemas())

	routes.Register(
		mux,
		spec,
		agentsHandler.Routes(),
	)
}
