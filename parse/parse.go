package parse

import (
	"github.com/zachlisp/go-zachlisp/debug"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

// collection openers by token text
var openers = map[string]form.Type{
	"(":  form.ListType,
	"[":  form.VectorType,
	"{":  form.MapType,
	"#{": form.SetType,
}

var closers = map[form.Type]byte{
	form.ListType:   ')',
	form.VectorType: ']',
	form.MapType:    '}',
	form.SetType:    '}',
}

// sugar token text to the head symbol of its expansion
var sugar = map[string]string{
	"'":  "quote",
	"`":  "quasiquote",
	"~":  "unquote",
	"@":  "deref",
	"^":  "with-meta",
	"~@": "splice-unquote",
}

func isCloser(c byte) bool {
	return c == ')' || c == ']' || c == '}'
}

// Read reads all top level forms in src.
func Read(src []byte, opts ...ParseOption) []form.Form {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks := token.Tokenize(nil, src)
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %s\n", &toks[i])
		}
	}
	var res []form.Form
	i := 0
	for {
		f, ok := readUsefulForm(toks, &i, 0, pOpts)
		if !ok {
			break
		}
		if debug.Read() {
			debug.Logf("read %s\n", f)
		}
		res = append(res, f)
	}
	return res
}

func ReadString(src string, opts ...ParseOption) []form.Form {
	return Read([]byte(src), opts...)
}

func trackPos(f form.Form, pos token.Pos, opts *parseOpts) form.Form {
	if opts.positions != nil {
		opts.positions[f] = pos
	}
	return f
}

// fail moves the cursor to the end of input and returns an error form.
func fail(toks []token.Token, pi *int, msg string, tok *token.Token, opts *parseOpts) form.Form {
	*pi = len(toks)
	if tok == nil {
		return form.NewError(msg, nil)
	}
	cp := *tok
	return trackPos(form.NewError(msg, &cp), cp.Pos, opts)
}

// readUsefulToken advances *pi past whitespace and comments and returns the
// token there without consuming it.
func readUsefulToken(toks []token.Token, pi *int) (*token.Token, bool) {
	for *pi < len(toks) {
		if !toks[*pi].Type.IsSkipped() {
			return &toks[*pi], true
		}
		*pi++
	}
	return nil, false
}

// readUsefulForm reads the next form. It returns false when only
// whitespace and comments remain.
func readUsefulForm(toks []token.Token, pi *int, depth int, opts *parseOpts) (form.Form, bool) {
	if _, ok := readUsefulToken(toks, pi); !ok {
		return nil, false
	}
	return readForm(toks, pi, depth, opts), true
}

// readForm reads the form starting at toks[*pi], which must not be
// whitespace or a comment.
func readForm(toks []token.Token, pi *int, depth int, opts *parseOpts) form.Form {
	tok := &toks[*pi]
	*pi++
	switch tok.Type {
	case token.TSpecialChars:
		return readSpecial(toks, pi, tok, tok.Value.Text, depth, opts)
	case token.TSpecialChar:
		c := tok.Value.Char
		if isCloser(c) {
			return fail(toks, pi, msgUnmatched(c), tok, opts)
		}
		return readSpecial(toks, pi, tok, string(c), depth, opts)
	case token.TString:
		s := tok.Value.Text
		if len(s) < 2 || !token.IsTerminated(s) {
			return fail(toks, pi, msgUnbalancedQuote, tok, opts)
		}
		str := *tok
		str.Value = token.TextVal(s[1 : len(s)-1])
		return trackPos(form.NewScalar(str), str.Pos, opts)
	}
	return trackPos(form.NewScalar(*tok), tok.Pos, opts)
}

// readSpecial reads a collection or a sugar expansion introduced by tok,
// whose text is s.
func readSpecial(toks []token.Token, pi *int, tok *token.Token, s string, depth int, opts *parseOpts) form.Form {
	t, isColl := openers[s]
	name, isSugar := sugar[s]
	if !isColl && !isSugar {
		return trackPos(form.NewScalar(*tok), tok.Pos, opts)
	}
	if depth+1 > opts.maxDepth {
		if debug.Depth() {
			debug.Logf("max depth %d exceeded at %s\n", opts.maxDepth, tok.Pos.String())
		}
		return fail(toks, pi, msgMaxDepth, tok, opts)
	}
	var res form.Form
	switch {
	case isColl:
		res = readColl(toks, pi, t, depth+1, opts)
	case s == "^":
		res = expandMeta(toks, pi, tok, depth+1, opts)
	default:
		res = expandQuoted(toks, pi, tok, name, depth+1, opts)
	}
	if _, isErr := res.(*form.ReaderError); isErr {
		return res
	}
	return trackPos(res, tok.Pos, opts)
}

func readColl(toks []token.Token, pi *int, t form.Type, depth int, opts *parseOpts) form.Form {
	end := closers[t]
	var elems []form.Form
	for {
		tok, ok := readUsefulToken(toks, pi)
		if !ok {
			break
		}
		if tok.Type == token.TSpecialChar && isCloser(tok.Value.Char) {
			if tok.Value.Char != end {
				return fail(toks, pi, msgUnmatched(tok.Value.Char), tok, opts)
			}
			*pi++
			return collect(t, elems)
		}
		x := readForm(toks, pi, depth, opts)
		if isDepthErr(x) {
			return x
		}
		elems = append(elems, x)
	}
	return fail(toks, pi, msgNoClose(end), nil, opts)
}

// isDepthErr reports whether x is a nesting limit error. Such errors
// replace every form that was open when the limit was hit.
func isDepthErr(x form.Form) bool {
	re, ok := x.(*form.ReaderError)
	return ok && re.Message == msgMaxDepth
}

func collect(t form.Type, elems []form.Form) form.Form {
	switch t {
	case form.VectorType:
		return form.NewVector(elems...)
	case form.MapType:
		return form.NewMap(elems...)
	case form.SetType:
		return form.NewSet(elems...)
	default:
		return form.NewList(elems...)
	}
}

// head returns the symbol naming the expansion of the sugar token tok.
func head(tok *token.Token, name string) form.Form {
	return form.NewScalar(token.Token{
		Type:  token.TSymbol,
		Value: token.TextVal(name),
		Pos:   tok.Pos,
	})
}

func expandQuoted(toks []token.Token, pi *int, tok *token.Token, name string, depth int, opts *parseOpts) form.Form {
	x, ok := readUsefulForm(toks, pi, depth, opts)
	if !ok {
		return fail(toks, pi, msgNothingAfterQuote, tok, opts)
	}
	if isDepthErr(x) {
		return x
	}
	return form.NewList(head(tok, name), x)
}

// expandMeta reads the metadata then its target, and places the target
// first in the expansion.
func expandMeta(toks []token.Token, pi *int, tok *token.Token, depth int, opts *parseOpts) form.Form {
	meta, ok := readUsefulForm(toks, pi, depth, opts)
	if !ok {
		return fail(toks, pi, msgNothingAfterCaret, tok, opts)
	}
	if isDepthErr(meta) {
		return meta
	}
	x, ok := readUsefulForm(toks, pi, depth, opts)
	if !ok {
		return fail(toks, pi, msgNothingAfterMeta, tok, opts)
	}
	if isDepthErr(x) {
		return x
	}
	return form.NewList(head(tok, sugar["^"]), x, meta)
}
