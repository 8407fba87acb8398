// Package recordio reads record arrays from JSON or YAML and writes a
// reindexed mapping as JSON.
//
// Input is always a single top-level array whose elements are objects:
//
//	[{"id": "a", "enabled": true}, {"id": "b", "enabled": false}]
//
// Anything else (a bare object, an array of scalars, a second document)
// is rejected with ErrShape.
package recordio
