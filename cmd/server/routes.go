package main

import (
	"net/http"

	"github.com/JaimeStill/agent-hub/internal/api"
	"github.com/JaimeStill/agent-hub/pkg/lifecycle"
	"github.com/JaimeStill/agent-hub/pkg/openapi"
	"github.com/JaimeStill/agent-hub/pkg/routes"
	"github.com/JaimeStill/agent-hub/web/docs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter mounts the operational endpoints beside the API module. The
// API handler owns every path not claimed here.
func buildRouter(apiModule *api.Module, ready lifecycle.ReadinessChecker, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthCheck)
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, ready)
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(apiModule.Spec))
	routes.Register(mux, nil, docs.NewHandler().Routes())
	mux.Handle("/", apiModule.Handler)

	return mux
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
