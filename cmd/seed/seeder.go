// Package main provides the seed command for populating the document store
// with initial or test data. Seeders run individually or all together.
package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"sort"

	"github.com/JaimeStill/agent-hub/pkg/docstore"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// Seeder defines the interface for document store seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed writes the seeder's documents to store and reports progress to out.
	Seed(ctx context.Context, store docstore.Container, out io.Writer) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

// getSeeder retrieves a seeder by name from the registry.
func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// runSeeder executes a single seeder by name.
func runSeeder(ctx context.Context, store docstore.Container, out io.Writer, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}

	if err := seeder.Seed(ctx, store, out); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

// runAllSeeders executes every registered seeder, stopping at the first failure.
func runAllSeeders(ctx context.Context, store docstore.Container, out io.Writer) error {
	for _, s := range listSeeders() {
		if err := s.Seed(ctx, store, out); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
