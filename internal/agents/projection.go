package agents

import (
	"github.com/JaimeStill/agent-hub/pkg/docstore"
	"github.com/JaimeStill/agent-hub/pkg/query"
)

var agentProjection = query.
	NewProjectionMap("public", docstore.Table, "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description")

var executionProjection = query.
	NewProjectionMap("public", docstore.Table, "c").
	Project("id", "ID").
	Project("agent_id", "AgentID").
	Project("name", "Name").
	Project("status", "Status").
	Project("start_time", "StartTime").
	Project("end_time", "EndTime")
