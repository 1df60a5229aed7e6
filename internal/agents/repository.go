package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/agent-hub/pkg/decode"
	"github.com/JaimeStill/agent-hub/pkg/docstore"
	"github.com/JaimeStill/agent-hub/pkg/query"
	"github.com/go-playground/validator/v10"
)

// Option configures the agents system.
type Option func(*repo)

// WithClock replaces the time source used for execution timestamps and the completed window.
func WithClock(now func() time.Time) Option {
	return func(r *repo) {
		r.now = now
	}
}

type repo struct {
	store    docstore.Container
	window   time.Duration
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// New creates the agents system over store. Completed executions are
// reported when they ended within window of now.
func New(store docstore.Container, window time.Duration, logger *slog.Logger, opts ...Option) System {
	r := &repo{
		store:    store,
		window:   window,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With("system", "agents"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *repo) Available(ctx context.Context) ([]Agent, error) {
	q, params := query.
		NewBuilder(agentProjection).
		WhereEquals("type", TypeAgent).
		OrderBy("Name", false).
		Build()

	docs, err := r.store.QueryItems(ctx, q, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	agents, err := decode.AllFromMaps[Agent](docs)
	if err != nil {
		return nil, fmt.Errorf("decode agents: %w", err)
	}
	return agents, nil
}

func (r *repo) ExecutionInfo(ctx context.Context) (*ExecutionInfo, error) {
	running, err := r.executions(ctx, query.
		NewBuilder(executionProjection).
		WhereEquals("type", TypeExecution).
		WhereEquals("Status", StatusRunning).
		OrderBy("StartTime", true))
	if err != nil {
		return nil, fmt.Errorf("running executions: %w", err)
	}

	cutoff := r.now().UTC().Add(-r.window).Format(TimestampLayout)
	completed, err := r.executions(ctx, query.
		NewBuilder(executionProjection).
		WhereEquals("type", TypeExecution).
		WhereEquals("Status", StatusCompleted).
		WhereAtLeast("EndTime", cutoff).
		OrderBy("EndTime", true))
	if err != nil {
		return nil, fmt.Errorf("completed executions: %w", err)
	}

	return &ExecutionInfo{
		CurrentlyRunning:  running,
		RecentlyCompleted: completed,
	}, nil
}

func (r *repo) Start(ctx context.Context, cmd StartCommand) (*Execution, error) {
	if err := r.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingID, err)
	}

	ts := r.now().UTC().Format(TimestampLayout)
	doc := docstore.Document{
		"id":            "exec_" + ts,
		"type":          TypeExecution,
		"agent_id":      cmd.ID,
		"status":        StatusRunning,
		"start_time":    ts,
		"partition_key": cmd.ID,
	}

	stored, err := r.store.CreateItem(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	exec, err := decode.FromMap[Execution](stored)
	if err != nil {
		return nil, fmt.Errorf("decode execution: %w", err)
	}

	r.logger.Info("agent started", "agent_id", cmd.ID, "execution_id", exec.ID)
	return &exec, nil
}

func (r *repo) executions(ctx context.Context, b *query.Builder) ([]Execution, error) {
	q, params := b.Build()

	docs, err := r.store.QueryItems(ctx, q, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return decode.AllFromMaps[Execution](docs)
}
