package reindex

import (
	"fmt"
	"strings"

	"record-reindexer/internal/common"
	"record-reindexer/internal/match"
)

// Spec describes one reindex transform.
type Spec struct {
	// SourceFields are read from every input record, in order.
	SourceFields []string
	// TargetFields name the output fields; TargetFields[i] receives SourceFields[i].
	TargetFields []string
	// IndexField is the target field whose value keys the output mapping.
	IndexField string
}

// Validate checks the spec, returning an error wrapping ErrInvalidMapping or
// ErrInvalidIndex. Field lists are checked before the index field.
func (s Spec) Validate() error {
	if len(s.SourceFields) != len(s.TargetFields) {
		return fmt.Errorf("%w: %d source fields but %d target fields",
			ErrInvalidMapping, len(s.SourceFields), len(s.TargetFields))
	}

	if common.IsEmpty(s.SourceFields) {
		return fmt.Errorf("%w: no fields to map", ErrInvalidMapping)
	}

	if err := checkNames("source", s.SourceFields); err != nil {
		return err
	}

	if err := checkNames("target", s.TargetFields); err != nil {
		return err
	}

	if common.IndexOf(s.TargetFields, s.IndexField) < 0 {
		var hint string
		if names := match.Suggest(s.IndexField, s.TargetFields, 1); len(names) > 0 {
			hint = fmt.Sprintf(" (did you mean %q?)", names[0])
		}

		return fmt.Errorf("%w: %q is not a target field%s", ErrInvalidIndex, s.IndexField, hint)
	}

	return nil
}

func checkNames(side string, names []string) error {
	if i := common.IndexOf(names, ""); i >= 0 {
		return fmt.Errorf("%w: %s field %d has an empty name", ErrInvalidMapping, side, i)
	}

	if dups := common.Duplicates(names); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate %s fields %s", ErrInvalidMapping, side, strings.Join(dups, ", "))
	}

	return nil
}

// clone returns a copy of s that shares no slices with it.
func (s Spec) clone() Spec {
	return Spec{
		SourceFields: append([]string(nil), s.SourceFields...),
		TargetFields: append([]string(nil), s.TargetFields...),
		IndexField:   s.IndexField,
	}
}
