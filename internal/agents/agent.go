// Package agents provides the domain system for listing agents and tracking
// their executions in the document store.
package agents

// Document type discriminators.
const (
	TypeAgent     = "agent"
	TypeExecution = "agent_execution"
)

// Execution statuses. Stored documents may carry other values; they pass through untouched.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
)

// TimestampLayout renders UTC timestamps with microsecond resolution and no
// zone suffix. Stored timestamps are compared as strings, so every writer must
// use this layout.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Agent is the public view of an agent document.
type Agent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Execution is the public view of an agent execution document.
type Execution struct {
	ID        string `json:"id"`
	AgentID   string `json:"agent_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// ExecutionInfo groups executions that are running and those completed within the reporting window.
type ExecutionInfo struct {
	CurrentlyRunning  []Execution `json:"currently_running"`
	RecentlyCompleted []Execution `json:"recently_completed"`
}

// StartCommand contains the data required to start an agent.
type StartCommand struct {
	ID string `json:"id" validate:"required"`
}

// StartResult is the response body of a start request.
type StartResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
