package api

import "github.com/JaimeStill/agent-hub/internal/agents"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Agents agents.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Agents: agents.New(
			runtime.Docstore,
			runtime.CompletedWindow,
			runtime.Logger,
		),
	}
}
