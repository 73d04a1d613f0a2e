// Package parse reads zachlisp source text into forms.
//
// # Usage
//
//	forms := parse.ReadString("(def x 1) 'x")
//	// forms[0]: (def x 1)
//	// forms[1]: (quote x)
//
// # Errors
//
// Reading never fails as a Go call. Syntax errors become *form.ReaderError
// values placed in the tree where the failure happened. Errors found while
// a collection or sugar form is open move the reader to the end of input,
// so such an error is always the last top level form.
//
// # Reader Sugar
//
//	'x   (quote x)
//	`x   (quasiquote x)
//	~x   (unquote x)
//	~@x  (splice-unquote x)
//	@x   (deref x)
//	^m x (with-meta x m)
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/token - Tokenizer
//   - github.com/zachlisp/go-zachlisp/form - Form data model
//   - github.com/zachlisp/go-zachlisp/encode - Print forms
package parse
