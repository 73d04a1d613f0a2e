// Package zachlisp connects the reader, the evaluator and the printer.
//
//	fmt.Print(zachlisp.Rep("(1 2 3) 'x"))
//	// (1 2 3)
//	// (quote x)
//
// # Related Packages
//
//   - github.com/zachlisp/go-zachlisp/parse - Read text to forms
//   - github.com/zachlisp/go-zachlisp/eval - Evaluators
//   - github.com/zachlisp/go-zachlisp/encode - Print forms
package zachlisp

import (
	"bytes"
	"io"

	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/eval"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/parse"
)

// Tool reads, evaluates and prints with a fixed configuration.
type Tool struct {
	Evaluator  eval.Evaluator
	ParseOpts  []parse.ParseOption
	EncodeOpts []encode.EncodeOption
}

func DefaultTool() *Tool {
	return &Tool{
		Evaluator: eval.Identity(),
	}
}

func (t *Tool) Read(src []byte) []form.Form {
	return parse.Read(src, t.ParseOpts...)
}

func (t *Tool) Eval(forms []form.Form) []form.Form {
	if t.Evaluator == nil {
		return forms
	}
	return t.Evaluator.Eval(forms)
}

// Print writes forms to w one per line.
func (t *Tool) Print(forms []form.Form, w io.Writer) error {
	return encode.EncodeAll(forms, w, t.EncodeOpts...)
}

// Rep reads src, evaluates the forms read and prints the result to w. It
// returns the evaluated forms.
func (t *Tool) Rep(src []byte, w io.Writer) ([]form.Form, error) {
	forms := t.Eval(t.Read(src))
	return forms, t.Print(forms, w)
}

func Read(src string) []form.Form {
	return DefaultTool().Read([]byte(src))
}

func Eval(forms []form.Form) []form.Form {
	return DefaultTool().Eval(forms)
}

// Print renders forms one per line, each line newline terminated.
func Print(forms []form.Form) string {
	buf := bytes.NewBuffer(nil)
	if err := DefaultTool().Print(forms, buf); err != nil {
		// writes to a bytes.Buffer do not fail
		panic(err)
	}
	return buf.String()
}

func Rep(src string) string {
	return Print(Eval(Read(src)))
}

// Errors returns the reader errors anywhere in forms, in depth first
// order.
func Errors(forms []form.Form) []*form.ReaderError {
	var res []*form.ReaderError
	for _, f := range forms {
		form.Walk(f, func(x form.Form) {
			if re, ok := x.(*form.ReaderError); ok {
				res = append(res, re)
			}
		})
	}
	return res
}
