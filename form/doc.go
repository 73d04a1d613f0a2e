// Package form provides the data model for read zachlisp source.
//
// # Overview
//
// A [Form] is a node in the tree produced by the reader. Form is a closed
// tagged union: the only implementations are the variants defined in this
// package, and code consuming forms dispatches with a type switch.
//
//   - *ReaderError: a syntax error materialized as data
//   - *Scalar: a single token (number, symbol, boolean, string, char)
//   - *List: ordered sequence, order significant
//   - *Vector: ordered sequence, order significant
//   - *Map: key/value entries, keys unique by structural equality
//   - *Set: elements unique by structural equality
//
// # Immutability
//
// Forms are never modified after construction. Maps and sets build their
// hash index once, in [NewMap] and [NewSet], and expose no mutators, so the
// same *Map or *Set may be shared as a key or element of any number of other
// maps and sets.
//
// # Hashing and Equality
//
// [Hash] computes a structural hash that is order sensitive for lists and
// vectors and order insensitive for maps and sets. [Equal] is structural
// equality computed field by field; it never relies on hashes, so hash
// collisions cannot merge distinct values. Equal values always hash equal.
//
// [Compare] is a total order over forms consistent with Equal. It is used to
// print maps and sets canonically.
//
// # Iteration Order
//
// Map entries and set elements iterate in insertion order (first insertion
// of a key or element).
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/parse - Read text into forms
//   - github.com/zachlisp/go-zachlisp/encode - Print forms to text
package form
