// Command migrate applies or reverts the embedded document store migrations
// against the configured database.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/JaimeStill/agent-hub/internal/config"
	"github.com/JaimeStill/agent-hub/migrations"
	"github.com/JaimeStill/agent-hub/pkg/database"
	"github.com/JaimeStill/agent-hub/pkg/logging"
)

func main() {
	var (
		up      = flag.Bool("up", false, "Apply all pending migrations")
		down    = flag.Int("down", 0, "Revert the given number of migrations")
		version = flag.Bool("version", false, "Print the current schema version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	if err := cfg.Finalize(); err != nil {
		log.Fatal("config finalize failed:", err)
	}

	m, err := database.NewMigrator(&cfg.Database, migrations.FS, logging.New(&cfg.Logging))
	if err != nil {
		log.Fatal("migrator init failed:", err)
	}
	defer m.Close()

	switch {
	case *up:
		if err := m.Up(); err != nil {
			log.Fatal("migrate up failed:", err)
		}

	case *down > 0:
		if err := m.Down(*down); err != nil {
			log.Fatal("migrate down failed:", err)
		}

	case *version:
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal("read version failed:", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)

	default:
		fmt.Println("usage: migrate [-up|-down <n>|-version]")
		flag.PrintDefaults()
	}
}
