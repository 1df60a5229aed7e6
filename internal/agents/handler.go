package agents

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/agent-hub/pkg/handlers"
	"github.com/JaimeStill/agent-hub/pkg/routes"
)

const missingIDMessage = "Agent ID is required"

// Handler provides HTTP handlers for agent listing and execution endpoints.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a new agents HTTP handler. Request bodies larger than
// maxBodySize bytes are rejected; zero disables the limit.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group configuration for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Agents"},
		Description: "Agent listing and execution tracking",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/available_agents", Handler: h.Available, OpenAPI: Spec.Available},
			{Method: "GET", Pattern: "/agent_execution_info", Handler: h.ExecutionInfo, OpenAPI: Spec.ExecutionInfo},
			{Method: "POST", Pattern: "/start_agent", Handler: h.Start, OpenAPI: Spec.Start},
		},
	}
}

// Available handles GET /available_agents.
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Available(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if result == nil {
		result = []Agent{}
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ExecutionInfo handles GET /agent_execution_info.
func (h *Handler) ExecutionInfo(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.ExecutionInfo(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if result.CurrentlyRunning == nil {
		result.CurrentlyRunning = []Execution{}
	}
	if result.RecentlyCompleted == nil {
		result.RecentlyCompleted = []Execution{}
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Start handles POST /start_agent.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var cmd StartCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodySize, &cmd); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.respondStartError(w, fmt.Errorf("%w: %v", ErrPayloadTooLarge, err))
			return
		}
		h.respondStartError(w, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	if _, err := h.sys.Start(r.Context(), cmd); err != nil {
		h.respondStartError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StartResult{
		Success: true,
		Message: fmt.Sprintf("Agent %s started successfully", cmd.ID),
	})
}

func (h *Handler) respondStartError(w http.ResponseWriter, err error) {
	status := MapHTTPStatus(err)

	var message string
	switch status {
	case http.StatusBadRequest:
		message = missingIDMessage
	case http.StatusRequestEntityTooLarge:
		message = "Request body too large"
	default:
		message = "Failed to start agent: " + err.Error()
	}

	h.logger.Error("start agent failed", "error", err, "status", status)
	handlers.RespondJSON(w, status, StartResult{Success: false, Message: message})
}
