package config

import (
	"fmt"
	"os"
	"time"
)

// EnvAgentsCompletedWindow overrides how far back completed executions are reported.
const EnvAgentsCompletedWindow = "AGENTS_COMPLETED_WINDOW"

// AgentsConfig contains agent execution reporting settings.
type AgentsConfig struct {
	// CompletedWindow is the look-back for recently completed executions.
	// Default: "168h"
	CompletedWindow string `toml:"completed_window"`
}

// CompletedWindowDuration parses and returns the completed window as a time.Duration.
func (c *AgentsConfig) CompletedWindowDuration() time.Duration {
	d, _ := time.ParseDuration(c.CompletedWindow)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *AgentsConfig) Finalize() error {
	if c.CompletedWindow == "" {
		c.CompletedWindow = "168h"
	}
	if v := os.Getenv(EnvAgentsCompletedWindow); v != "" {
		c.CompletedWindow = v
	}

	d, err := time.ParseDuration(c.CompletedWindow)
	if err != nil {
		return fmt.Errorf("invalid completed_window: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("completed_window must be positive")
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	if overlay.CompletedWindow != "" {
		c.CompletedWindow = overlay.CompletedWindow
	}
}
