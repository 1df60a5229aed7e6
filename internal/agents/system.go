package agents

import "context"

// System defines the agent listing and execution tracking operations.
type System interface {
	Available(ctx context.Context) ([]Agent, error)
	ExecutionInfo(ctx context.Context) (*ExecutionInfo, error)
	Start(ctx context.Context, cmd StartCommand) (*Execution, error)
}
