package query

import (
	"fmt"
	"strings"
)

type projected struct {
	field    string
	viewName string
}

// ProjectionMap maps view names onto JSON fields of a document body column.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	body   string
	fields []projected
	byView map[string]string
}

// NewProjectionMap creates a projection over the body column of schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		body:   "body",
		fields: make([]projected, 0),
		byView: make(map[string]string),
	}
}

// Project adds a document field to the projection under viewName.
func (p *ProjectionMap) Project(field, viewName string) *ProjectionMap {
	p.fields = append(p.fields, projected{field: field, viewName: viewName})
	p.byView[viewName] = field
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the qualified table with its alias.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Field returns the document field for viewName, or viewName itself when it is not projected.
func (p *ProjectionMap) Field(viewName string) string {
	if f, ok := p.byView[viewName]; ok {
		return f
	}
	return viewName
}

// Column returns the text-valued SQL expression for viewName.
func (p *ProjectionMap) Column(viewName string) string {
	return fmt.Sprintf("%s.%s->>%s", p.alias, p.body, literal(p.Field(viewName)))
}

// Columns renders the select list as a single JSON object per row. Fields
// missing from a document are omitted. With no projected fields the whole
// body is selected.
func (p *ProjectionMap) Columns() string {
	if len(p.fields) == 0 {
		return fmt.Sprintf("%s.%s", p.alias, p.body)
	}

	pairs := make([]string, len(p.fields))
	for i, f := range p.fields {
		pairs[i] = fmt.Sprintf("%s, %s.%s->%s", literal(f.field), p.alias, p.body, literal(f.field))
	}
	return fmt.Sprintf("jsonb_strip_nulls(jsonb_build_object(%s))", strings.Join(pairs, ", "))
}

func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
