package docstore

import "errors"

var (
	ErrConflict        = errors.New("document with the same id already exists in partition")
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidQuery    = errors.New("invalid query")
)
