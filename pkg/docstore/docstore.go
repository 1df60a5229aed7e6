// Package docstore exposes a schema-flexible document container backed by a
// PostgreSQL JSONB table. Documents are partitioned by a configurable body
// field and queried with SQL that binds Cosmos-style named parameters.
package docstore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Table is the relation holding every document of the container.
const Table = "documents"

// Document is a loosely typed JSON object as stored in the container.
type Document map[string]any

// Parameter is a named query parameter. Name includes the leading "@".
type Parameter struct {
	Name  string
	Value any
}

// Container creates and queries documents.
type Container interface {
	CreateItem(ctx context.Context, doc Document) (Document, error)
	QueryItems(ctx context.Context, query string, params ...Parameter) ([]Document, error)
}

type container struct {
	db               *sql.DB
	partitionKeyPath string
	observer         Observer
	logger           *slog.Logger
	now              func() time.Time
}

// New creates a Container over db. A nil observer disables metrics.
func New(db *sql.DB, cfg *Config, observer Observer, logger *slog.Logger) Container {
	if observer == nil {
		observer = nopObserver{}
	}
	return &container{
		db:               db,
		partitionKeyPath: cfg.PartitionKeyPath,
		observer:         observer,
		logger:           logger.With("system", "docstore"),
		now:              time.Now,
	}
}

const insertQuery = `
		INSERT INTO ` + Table + ` (partition_key, id, body)
		VALUES ($1, $2, $3)
		RETURNING body`

func (c *container) CreateItem(ctx context.Context, doc Document) (Document, error) {
	start := time.Now()
	stored, err := c.createItem(ctx, doc)
	c.observer.Record("create", time.Since(start), err)
	return stored, err
}

func (c *container) createItem(ctx context.Context, doc Document) (Document, error) {
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: id must be a non-empty string", ErrInvalidDocument)
	}

	pk := partitionValue(doc[c.partitionKeyPath])

	stored := make(Document, len(doc)+2)
	for k, v := range doc {
		stored[k] = v
	}
	stored["_ts"] = c.now().Unix()
	stored["_etag"] = fmt.Sprintf("%q", uuid.NewString())

	body, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var raw []byte
	if err := c.db.QueryRowContext(ctx, insertQuery, pk, id, string(body)).Scan(&raw); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, fmt.Errorf("create item: %w", err)
	}

	result, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("item created", "id", id, "partition_key", pk)
	return result, nil
}

func (c *container) QueryItems(ctx context.Context, query string, params ...Parameter) ([]Document, error) {
	start := time.Now()
	docs, err := c.queryItems(ctx, query, params)
	c.observer.Record("query", time.Since(start), err)
	return docs, err
}

func (c *container) queryItems(ctx context.Context, query string, params []Parameter) ([]Document, error) {
	q, args, err := Bind(query, params)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	c.logger.Debug("items queried", "count", len(docs))
	return docs, nil
}

func decodeDocument(raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalidDocument)
	}
	return doc, nil
}

func partitionValue(v any) string {
	switch pk := v.(type) {
	case nil:
		return ""
	case string:
		return pk
	default:
		return fmt.Sprint(pk)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
