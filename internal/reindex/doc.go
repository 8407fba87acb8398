// Package reindex turns an ordered list of flat records into a mapping keyed
// by one of their fields.
//
// Each record is projected onto a renamed set of fields: the value found under
// SourceFields[i] is written under TargetFields[i]. The projected record is
// then stored under the key derived from its IndexField value (see
// record.Key). When two records produce the same key, the later one wins.
//
//	out, err := reindex.Reindex(features,
//	    []string{"id", "isEnabledForUser", "isAvailableForOptIn"},
//	    []string{"feature", "enabled", "optin"},
//	    "feature")
//
// A Spec can be validated once and bound into a Reindexer, which is then
// applied to any number of record lists, concurrently if needed:
//
//	rx, err := reindex.New(spec, reindex.WithCollisionHook(onCollision))
//	...
//	out := rx.Apply(features)
//
// A source field missing from a record is not an error. The target field is
// still present in the projected record and holds nil.
package reindex
