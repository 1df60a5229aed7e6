// Package casing rewrites JSON object keys from snake_case to camelCase.
package casing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// CamelKey converts a single snake_case key to lowerCamelCase. Leading
// underscores are kept and keys without separators are returned unchanged.
func CamelKey(key string) string {
	trimmed := strings.TrimLeft(key, "_")
	prefix := key[:len(key)-len(trimmed)]

	if trimmed == "" || !strings.ContainsAny(trimmed, "_- ") {
		return key
	}
	return prefix + strcase.ToLowerCamel(trimmed)
}

// Camelize returns v with every object key converted by CamelKey. Objects are
// rewritten recursively; arrays convert only their object elements; other
// values are returned as-is. It fails when two keys of one object convert to
// the same key.
func Camelize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		return camelizeMap(t)
	case []any:
		return camelizeSlice(t)
	default:
		return v, nil
	}
}

func camelizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		ck := CamelKey(k)
		if _, exists := out[ck]; exists {
			return nil, fmt.Errorf("key %q collides with an existing %q", k, ck)
		}
		cv, err := Camelize(v)
		if err != nil {
			return nil, err
		}
		out[ck] = cv
	}
	return out, nil
}

func camelizeSlice(s []any) ([]any, error) {
	out := make([]any, len(s))
	for i, v := range s {
		m, ok := v.(map[string]any)
		if !ok {
			out[i] = v
			continue
		}
		cm, err := camelizeMap(m)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = cm
	}
	return out, nil
}

// Normalize decodes a JSON body, camelizes it, and re-encodes it.
func Normalize(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode body: trailing data")
	}

	cv, err := Camelize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cv); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return buf.Bytes(), nil
}
