package agents

import (
	"errors"
	"net/http"
)

// Domain errors for agent operations.
var (
	ErrMissingID       = errors.New("agent id is required")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrPayloadTooLarge = errors.New("request payload too large")
	ErrStore           = errors.New("document store failure")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrPayloadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
