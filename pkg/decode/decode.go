// Package decode converts loosely typed JSON maps into typed records.
package decode

import (
	"encoding/json"
	"fmt"
)

// FromMap round-trips data through JSON into a T.
func FromMap[T any, M ~map[string]any](data M) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// AllFromMaps decodes every element of data, reporting the index of the first failure.
func AllFromMaps[T any, M ~map[string]any](data []M) ([]T, error) {
	result := make([]T, 0, len(data))
	for i, m := range data {
		v, err := FromMap[T](m)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		result = append(result, v)
	}
	return result, nil
}
