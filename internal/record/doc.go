// Package record defines the flat record model shared by the reindexer,
// the record readers and the CLI.
//
// A Record maps field names to scalar values: strings, booleans, integers,
// floating point numbers or nil. A nil value stands for an absent field.
package record
