// Package query builds document queries over a ProjectionMap with named
// parameters suitable for docstore.Container.QueryItems.
package query

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/agent-hub/pkg/docstore"
)

type condition struct {
	clause string
}

// Builder constructs document queries using a fluent API with automatic parameter naming.
type Builder struct {
	projection *ProjectionMap
	conditions []condition
	params     []docstore.Parameter
	names      map[string]int
	orderBy    string
	descending bool
}

// NewBuilder creates a Builder for the given projection.
func NewBuilder(projection *ProjectionMap) *Builder {
	return &Builder{
		projection: projection,
		conditions: make([]condition, 0),
		params:     make([]docstore.Parameter, 0),
		names:      make(map[string]int),
	}
}

// Build returns the SELECT query and its parameters.
func (b *Builder) Build() (string, []docstore.Parameter) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		b.buildWhere(),
		b.buildOrderBy(),
	)
	return q, b.params
}

// OrderBy sets the sort field and direction. An empty field leaves the order unspecified.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	b.orderBy = field
	b.descending = descending
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	return b.where(field, "=", value)
}

// WhereAtLeast adds a >= condition on the text value of field. Nil values are ignored.
func (b *Builder) WhereAtLeast(field string, value any) *Builder {
	return b.where(field, ">=", value)
}

func (b *Builder) where(field, op string, value any) *Builder {
	if value == nil {
		return b
	}
	name := b.param(field, value)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s %s %s", b.projection.Column(field), op, name),
	})
	return b
}

func (b *Builder) param(field string, value any) string {
	base := "@" + paramName(b.projection.Field(field))
	name := base
	if n := b.names[base]; n > 0 {
		name = fmt.Sprintf("%s_%d", base, n+1)
	}
	b.names[base]++
	b.params = append(b.params, docstore.Parameter{Name: name, Value: value})
	return name
}

func (b *Builder) buildOrderBy() string {
	if b.orderBy == "" {
		return ""
	}
	dir := "ASC"
	if b.descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", b.projection.Column(b.orderBy), dir)
}

func (b *Builder) buildWhere() string {
	if len(b.conditions) == 0 {
		return ""
	}
	clauses := make([]string, len(b.conditions))
	for i, c := range b.conditions {
		clauses[i] = c.clause
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func paramName(field string) string {
	var sb strings.Builder
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('_')
	}
	name := sb.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "p" + name
	}
	return name
}
