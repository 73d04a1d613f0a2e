package eval

import (
	"github.com/zachlisp/go-zachlisp/form"
)

type Evaluator interface {
	String() string
	Eval(forms []form.Form) []form.Form
}

type name string

func (s name) String() string {
	return string(s)
}

const identityName name = "identity"

type identity struct {
	name
}

func (identity) Eval(forms []form.Form) []form.Form {
	return forms
}

var identityEval = &identity{name: identityName}

// Identity returns the evaluator that returns its input unchanged.
func Identity() Evaluator {
	return identityEval
}
