// Package match provides field-name normalization, Levenshtein distance
// calculation and candidate ranking used to suggest the intended field
// when a mapping names one that does not exist.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks candidate names against a wanted name
//   - Suggest: returns the closest candidate names above a threshold
package match
