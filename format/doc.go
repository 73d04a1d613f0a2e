// Package format names the output formats of the printer.
//
// The lisp format is the text the reader accepts. The json and yaml
// formats are structural dumps of a form tree for use by other tools.
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/encode - Print forms in a format
package format
