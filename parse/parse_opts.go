package parse

import (
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

// DefaultMaxDepth is the default limit on nested collections and sugar
// forms.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth  int
	positions map[form.Form]token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth sets the nesting limit. Values less than 1 select
// DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// ParsePositions records in m the source position of the first token of
// every form read.
func ParsePositions(m map[form.Form]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
