// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, document store, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-hub/internal/config"
	"github.com/JaimeStill/agent-hub/migrations"
	"github.com/JaimeStill/agent-hub/pkg/database"
	"github.com/JaimeStill/agent-hub/pkg/docstore"
	"github.com/JaimeStill/agent-hub/pkg/lifecycle"
	"github.com/JaimeStill/agent-hub/pkg/logging"
	"github.com/JaimeStill/agent-hub/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, the document container, and metrics.
type Infrastructure struct {
	Lifecycle   *lifecycle.Coordinator
	Logger      *slog.Logger
	Database    database.System
	Docstore    docstore.Container
	Registry    *prometheus.Registry
	HTTPMetrics *middleware.HTTPMetrics

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("http metrics init failed: %w", err)
	}

	observer, err := docstore.NewPrometheusObserver(reg)
	if err != nil {
		return nil, fmt.Errorf("docstore metrics init failed: %w", err)
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:   lc,
		Logger:      logger,
		Database:    db,
		Docstore:    docstore.New(db.Connection(), &cfg.Docstore, observer, logger),
		Registry:    reg,
		HTTPMetrics: httpMetrics,
		dbConfig:    &cfg.Database,
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
// When auto_migrate is enabled, pending migrations are applied after the database is reachable.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.dbConfig.AutoMigrate {
		if err := i.migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (i *Infrastructure) migrate() error {
	m, err := database.NewMigrator(i.dbConfig, migrations.FS, i.Logger)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Up()
}
