package reindex

import "record-reindexer/internal/record"

// CollisionHook is called when the record at a later position replaces prev
// under key. Neither record may be modified by the hook.
type CollisionHook func(key string, prev, next record.Record)

// MissingFieldHook is called once for every source field absent from the
// record at position pos of the input.
type MissingFieldHook func(pos int, field string)

// Option configures a Reindexer.
type Option func(*Reindexer)

// WithCollisionHook registers fn to observe last-write-wins replacements.
func WithCollisionHook(fn CollisionHook) Option {
	return func(r *Reindexer) {
		r.onCollision = fn
	}
}

// WithMissingFieldHook registers fn to observe source fields that a record lacks.
func WithMissingFieldHook(fn MissingFieldHook) Option {
	return func(r *Reindexer) {
		r.onMissingField = fn
	}
}
