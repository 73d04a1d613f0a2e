// Package token provides tokenization support for zachlisp source text.
//
// [Tokenize] is a function for tokenizing bytes. It never fails: every byte
// of input belongs to exactly one token, and whitespace and comment tokens
// are kept in the output so that positions stay simple to track. Readers are
// expected to skip them.
//
// Each token carries its [TokenType], a parsed [Value] and the [Pos] at which
// the match started.
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/parse - Read tokens into forms
//   - github.com/zachlisp/go-zachlisp/form - Form data model
package token
