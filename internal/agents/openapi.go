package agents

import "github.com/JaimeStill/agent-hub/pkg/openapi"

// spec holds OpenAPI operation definitions for the agents domain.
type spec struct {
	Available     *openapi.Operation
	ExecutionInfo *openapi.Operation
	Start         *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all agent endpoints.
// Response schemas describe the camelCase wire form.
var Spec = spec{
	Available: &openapi.Operation{
		Summary:     "List available agents",
		Description: "Returns every stored agent ordered by name",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Available agents", "Agent"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	ExecutionInfo: &openapi.Operation{
		Summary:     "Get agent execution info",
		Description: "Returns running executions and executions completed within the reporting window",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Execution summary", "ExecutionInfo"),
			500: openapi.ResponseRef("ServerError"),
		},
	},
	Start: &openapi.Operation{
		Summary:     "Start agent",
		Description: "Records a running execution for the agent",
		RequestBody: openapi.RequestBodyJSON("StartAgentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Agent started", "StartResult"),
			400: openapi.ResponseJSON("Agent ID missing", "StartResult"),
			413: openapi.ResponseJSON("Request body too large", "StartResult"),
			500: openapi.ResponseJSON("Execution could not be recorded", "StartResult"),
		},
	},
}

// Schemas returns the agent domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	execution := openapi.SchemaRef("Execution")

	return map[string]*openapi.Schema{
		"Agent": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":          {Type: "string"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
			},
		},
		"Execution": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":        {Type: "string", Example: "exec_2025-01-01T12:00:00.000000"},
				"agentId":   {Type: "string"},
				"name":      {Type: "string"},
				"status":    {Type: "string", Example: StatusRunning},
				"startTime": {Type: "string", Description: "UTC timestamp without zone suffix"},
				"endTime":   {Type: "string", Description: "UTC timestamp without zone suffix"},
			},
		},
		"ExecutionInfo": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"currentlyRunning":  {Type: "array", Items: execution},
				"recentlyCompleted": {Type: "array", Items: execution},
			},
		},
		"StartAgentCommand": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Property{
				"id": {Type: "string", Description: "Agent ID", Example: "agent1"},
			},
		},
		"StartResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"success": {Type: "boolean"},
				"message": {Type: "string"},
			},
		},
	}
}
