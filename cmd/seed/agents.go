package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JaimeStill/agent-hub/internal/agents"
	"github.com/JaimeStill/agent-hub/pkg/docstore"
	"github.com/JaimeStill/agent-hub/pkg/query"
)

// AgentPartition is the partition shared by every agent document.
const AgentPartition = "agent_metadata"

func init() {
	registerSeeder(&AgentSeeder{})
}

// AgentSeedData represents the JSON structure for agent seed files.
type AgentSeedData struct {
	Agents []agents.Agent `json:"agents"`
}

// AgentSeeder implements Seeder for agent documents.
// It loads seed data from an embedded file or an external file path.
type AgentSeeder struct {
	file string
}

// Name returns "agents" as the seeder identifier.
func (s *AgentSeeder) Name() string {
	return "agents"
}

// Description returns a human-readable description of this seeder.
func (s *AgentSeeder) Description() string {
	return "Seeds the sample agent catalog and lists the stored agents"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *AgentSeeder) SetFile(path string) {
	s.file = path
}

// Seed creates each agent document. A failed create (for example an agent
// that already exists) is reported and skipped. Afterwards every stored agent
// is listed for verification.
func (s *AgentSeeder) Seed(ctx context.Context, store docstore.Container, out io.Writer) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Starting to populate test data...")

	for _, a := range data.Agents {
		created, err := store.CreateItem(ctx, agentDocument(a))
		if err != nil {
			fmt.Fprintf(out, "Error creating agent %s: %v\n", a.Name, err)
			continue
		}
		fmt.Fprintf(out, "Successfully created agent: %s\n", indent(created))
	}

	q, params := query.
		NewBuilder(query.NewProjectionMap("public", docstore.Table, "c")).
		WhereEquals("type", agents.TypeAgent).
		OrderBy("id", false).
		Build()

	found, err := store.QueryItems(ctx, q, params...)
	if err != nil {
		return fmt.Errorf("verify agents: %w", err)
	}

	fmt.Fprintln(out, "\nVerifying agents in database:")
	for _, doc := range found {
		fmt.Fprintf(out, "Found agent: %s\n", indent(doc))
	}

	return nil
}

func (s *AgentSeeder) loadSeedData() (*AgentSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/agents.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data AgentSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

func agentDocument(a agents.Agent) docstore.Document {
	return docstore.Document{
		"id":            a.ID,
		"name":          a.Name,
		"type":          agents.TypeAgent,
		"description":   a.Description,
		"partition_key": AgentPartition,
	}
}

func indent(doc docstore.Document) string {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Sprint(doc)
	}
	return string(b)
}
