// Package diagnostic provides coded errors, warnings and infos collected
// while validating reindex mapping files.
//
// Every problem found is recorded instead of stopping at the first one,
// so a mapping file can be fixed in a single pass.
package diagnostic
