// Package encode prints forms as text.
//
// # Usage
//
//	forms := parse.ReadString("(1 2.5 {a \"b\"})")
//	err := encode.EncodeAll(forms, os.Stdout)
//	// (1 2.500000 {a "b"})
//
//	// print map and set contents in canonical order
//	s := encode.MustString(f, encode.EncodeSorted(true))
//
//	// structural dump for other tools
//	err = encode.Encode(f, w, encode.EncodeFormat(format.YAMLFormat))
//
// The lisp rendering is lossy: string contents are not re-escaped and
// floats print with six fractional digits. Reading printed text gives a
// tree structurally equal to the printed one for scalars, lists and
// vectors.
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/form - Form data model
//   - github.com/zachlisp/go-zachlisp/format - Output formats
//   - github.com/zachlisp/go-zachlisp/parse - Read text to forms
package encode
