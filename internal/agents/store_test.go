package agents_test

import (
	"context"
	"strings"
	"sync"

	"github.com/JaimeStill/agent-hub/pkg/docstore"
)

// memStore filters documents by the named parameters the agents queries bind.
// @end_time is a lower bound; every other parameter is an equality match on
// the field of the same name.
type memStore struct {
	mu        sync.Mutex
	docs      []docstore.Document
	queries   []string
	params    [][]docstore.Parameter
	queryErr  error
	createErr error
}

func (m *memStore) CreateItem(ctx context.Context, doc docstore.Document) (docstore.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}

	stored := make(docstore.Document, len(doc))
	for k, v := range doc {
		stored[k] = v
	}
	m.docs = append(m.docs, stored)
	return stored, nil
}

func (m *memStore) QueryItems(ctx context.Context, q string, params ...docstore.Parameter) ([]docstore.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = append(m.queries, q)
	m.params = append(m.params, params)

	if m.queryErr != nil {
		return nil, m.queryErr
	}

	result := make([]docstore.Document, 0)
	for _, doc := range m.docs {
		if matches(doc, params) {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (m *memStore) count(docType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, doc := range m.docs {
		if doc["type"] == docType {
			n++
		}
	}
	return n
}

func matches(doc docstore.Document, params []docstore.Parameter) bool {
	for _, p := range params {
		field := strings.TrimPrefix(p.Name, "@")
		if field == "end_time" {
			v, ok := doc[field].(string)
			if !ok || v < p.Value.(string) {
				return false
			}
			continue
		}
		if doc[field] != p.Value {
			return false
		}
	}
	return true
}
