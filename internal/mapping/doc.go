// Package mapping provides the YAML schema, parsing, normalization and
// validation of reindex mapping files.
//
// A mapping file names one or more reindex transforms, so the same field
// mapping can be reviewed once and reused by every caller.
//
// # Schema Overview
//
//	version: "1"
//	mappings:
//	  - name: features
//	    # Positional lists: source[i] is renamed to target[i]
//	    source: [id, isEnabledForUser, isAvailableForOptIn]
//	    target: [feature, enabled, optin]
//	    index: feature
//	  - name: customers
//	    # Ordered shorthand, one "source: target" pair per line
//	    fields:
//	      id: customer
//	      age: age
//	    index: customer
//
// source and target accept a single string as well as a list. When both the
// lists and the fields shorthand are present, the shorthand pairs follow the
// list pairs. NormalizeMappingFile folds the shorthand into the lists.
//
// # Validation
//
// Validate reports every structural problem as a coded diagnostic: unequal
// list lengths, empty or duplicate field names, duplicate mapping names and
// an index field that is not a target field (with suggestions for the
// closest target field names).
package mapping
