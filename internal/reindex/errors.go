package reindex

import "errors"

var (
	// ErrInvalidMapping reports source and target field lists that cannot be
	// paired: different lengths, no fields at all, or a duplicate or empty name.
	ErrInvalidMapping = errors.New("invalid field mapping")

	// ErrInvalidIndex reports an index field that is not one of the target fields.
	ErrInvalidIndex = errors.New("invalid index field")
)
