package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/agent-hub/pkg/docstore"
	"github.com/JaimeStill/agent-hub/pkg/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn        = flag.String("dsn", "", "Database connection string")
		all        = flag.Bool("all", false, "Run all seeders")
		agentsFlag = flag.Bool("agents", false, "Seed agents")
		file       = flag.String("file", "", "External seed file (overrides embedded)")
		list       = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var logCfg logging.Config
	if err := logCfg.Finalize(&logging.Env{Level: "LOGGING_LEVEL", Format: "LOGGING_FORMAT"}); err != nil {
		log.Fatalf("invalid logging configuration: %v", err)
	}

	var storeCfg docstore.Config
	if err := storeCfg.Finalize(&docstore.Env{PartitionKeyPath: "DOCSTORE_PARTITION_KEY_PATH"}); err != nil {
		log.Fatalf("invalid docstore configuration: %v", err)
	}

	store := docstore.New(db, &storeCfg, nil, logging.New(&logCfg))
	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, store, os.Stdout); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *agentsFlag:
		if *file != "" {
			if seeder, ok := getSeeder("agents"); ok {
				seeder.(*AgentSeeder).SetFile(*file)
			}
		}
		if err := runSeeder(ctx, store, os.Stdout, "agents"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("agents seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-agents] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
