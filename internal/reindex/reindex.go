package reindex

import (
	"record-reindexer/internal/record"
)

// Reindex validates the field mapping and applies it to records in one call.
// It returns an error before looking at any record:
//   - ErrInvalidMapping when the field lists differ in length, are empty,
//     contain an empty name or repeat a name on either side
//   - ErrInvalidIndex when indexField is not one of targetFields
//
// Empty input yields an empty, non-nil mapping.
func Reindex(records []record.Record, sourceFields, targetFields []string, indexField string) (map[string]record.Record, error) {
	rx, err := New(Spec{
		SourceFields: sourceFields,
		TargetFields: targetFields,
		IndexField:   indexField,
	})
	if err != nil {
		return nil, err
	}

	return rx.Apply(records), nil
}

// Reindexer applies a validated Spec. It holds no mutable state and is safe
// for concurrent use as long as its hooks are.
type Reindexer struct {
	spec Spec

	onCollision    CollisionHook
	onMissingField MissingFieldHook
}

// New validates spec and binds it, together with opts, into a Reindexer.
// The spec's slices are copied, so later changes by the caller have no effect.
func New(spec Spec, opts ...Option) (*Reindexer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	r := &Reindexer{spec: spec.clone()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Spec returns a copy of the bound spec.
func (r *Reindexer) Spec() Spec {
	return r.spec.clone()
}

// Apply projects every record and keys it by its index field value.
// Records are processed in order and a later record replaces an earlier one
// with the same key. records and its elements are left untouched.
func (r *Reindexer) Apply(records []record.Record) map[string]record.Record {
	out := make(map[string]record.Record, len(records))

	for pos, rec := range records {
		projected := r.project(pos, rec)
		key := record.Key(projected[r.spec.IndexField])

		if prev, ok := out[key]; ok && r.onCollision != nil {
			r.onCollision(key, prev, projected)
		}

		out[key] = projected
	}

	return out
}

func (r *Reindexer) project(pos int, rec record.Record) record.Record {
	projected, missing := record.Project(rec, r.spec.SourceFields, r.spec.TargetFields)

	if r.onMissingField != nil {
		for _, field := range missing {
			r.onMissingField(pos, field)
		}
	}

	return projected
}
