// Package contact defines the fixed-shape contact Record and the rules that
// apply to it: field order, header literals, entry validation, title-casing
// and keyword matching.
//
// This package imports nothing internal. The store, console and phonebook
// packages all build on it.
//
// Key constraints:
//   - Six string fields, always present, always in the order of Fields
//   - Header literals are fixed for round-trip compatibility with existing files
//   - No uniqueness: duplicate records are legal
package contact
