package docstore_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JaimeStill/agent-hub/pkg/docstore"
)

func TestBind(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		params    []docstore.Parameter
		wantQuery string
		wantArgs  []any
	}{
		{
			"single parameter",
			"SELECT c.body FROM documents c WHERE c.body->>'type' = @type",
			[]docstore.Parameter{{Name: "@type", Value: "agent"}},
			"SELECT c.body FROM documents c WHERE c.body->>'type' = $1",
			[]any{"agent"},
		},
		{
			"positions follow first reference",
			"WHERE a = @second AND b = @first AND c = @second",
			[]docstore.Parameter{{Name: "@first", Value: 1}, {Name: "@second", Value: 2}},
			"WHERE a = $1 AND b = $2 AND c = $1",
			[]any{2, 1},
		},
		{
			"quoted references are literal",
			`SELECT '@type', "@col" FROM t WHERE x = @x`,
			[]docstore.Parameter{{Name: "@x", Value: "v"}},
			`SELECT '@type', "@col" FROM t WHERE x = $1`,
			[]any{"v"},
		},
		{
			"escaped quote inside literal",
			"WHERE a = 'it''s @x' AND b = @x",
			[]docstore.Parameter{{Name: "@x", Value: true}},
			"WHERE a = 'it''s @x' AND b = $1",
			[]any{true},
		},
		{
			"no parameters",
			"SELECT 1",
			nil,
			"SELECT 1",
			nil,
		},
		{
			"bare at sign",
			"SELECT '@' || @name_2",
			[]docstore.Parameter{{Name: "@name_2", Value: "n"}},
			"SELECT '@' || $1",
			[]any{"n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, args, err := docstore.Bind(tt.query, tt.params)
			if err != nil {
				t.Fatalf("Bind() error = %v", err)
			}
			if q != tt.wantQuery {
				t.Errorf("query = %q, want %q", q, tt.wantQuery)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		params []docstore.Parameter
	}{
		{"missing parameter", "WHERE a = @a", nil},
		{"unused parameter", "WHERE a = 1", []docstore.Parameter{{Name: "@a", Value: 1}}},
		{"duplicate parameter", "WHERE a = @a", []docstore.Parameter{{Name: "@a", Value: 1}, {Name: "@a", Value: 2}}},
		{"name without at sign", "WHERE a = @a", []docstore.Parameter{{Name: "a", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := docstore.Bind(tt.query, tt.params)
			if !errors.Is(err, docstore.ErrInvalidQuery) {
				t.Errorf("error = %v, want ErrInvalidQuery", err)
			}
		})
	}
}
