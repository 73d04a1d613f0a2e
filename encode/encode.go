package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/format"
	"github.com/zachlisp/go-zachlisp/token"
)

var ErrEncoding = errors.New("encoding error")

const errorTag = "#ReaderError"

type EncState struct {
	format format.Format
	sorted bool

	Color func(form.Type, ColorAttr, string) string
}

// Encode writes f followed by a newline to w.
func Encode(f form.Form, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.LispFormat:
		d := appendForm(nil, f, es)
		d = append(d, '\n')
		_, err := w.Write(d)
		return err
	case format.JSONFormat:
		return encodeJSON(f, w, es)
	case format.YAMLFormat:
		return encodeYAML(f, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

// EncodeAll writes forms one per line. In yaml each form is its own
// document.
func EncodeAll(forms []form.Form, w io.Writer, opts ...EncodeOption) error {
	isYAML := FormatFromOpts(opts...).IsYAML()
	for i, f := range forms {
		if isYAML && i > 0 {
			if err := writeString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := Encode(f, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t form.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func appendForm(dst []byte, f form.Form, es *EncState) []byte {
	switch x := f.(type) {
	case *form.ReaderError:
		dst = append(dst, applyColor(es, form.ReaderErrorType, TagColor, errorTag)...)
		dst = append(dst, ' ')
		return append(dst, applyColor(es, form.ReaderErrorType, ValueColor, `"`+x.Message+`"`)...)
	case *form.Scalar:
		return appendScalar(dst, &x.Token, es)
	case *form.List:
		return appendSeq(dst, form.ListType, "(", ")", x.Elems, es)
	case *form.Vector:
		return appendSeq(dst, form.VectorType, "[", "]", x.Elems, es)
	case *form.Map:
		return appendMap(dst, x, es)
	case *form.Set:
		elems := x.Elems()
		if es.sorted {
			elems = form.SortedElems(x)
		}
		return appendSeq(dst, form.SetType, "#{", "}", elems, es)
	}
	return dst
}

func appendScalar(dst []byte, tok *token.Token, es *EncState) []byte {
	var (
		v    = tok.Value
		s    string
		attr = SymbolColor
	)
	switch v.Kind {
	case token.BoolValue:
		s = strconv.FormatBool(v.Bool)
		attr = BoolColor
	case token.CharValue:
		s = string(v.Char)
		attr = DelimColor
	case token.IntValue:
		s = strconv.FormatInt(v.Int, 10)
		attr = NumberColor
	case token.FloatValue:
		s = strconv.FormatFloat(v.Float, 'f', 6, 64)
		attr = NumberColor
	default:
		s = v.Text
		if tok.Type == token.TString {
			s = `"` + s + `"`
			attr = StringColor
		}
	}
	return append(dst, applyColor(es, form.ScalarType, attr, s)...)
}

func appendSeq(dst []byte, t form.Type, open, shut string, elems []form.Form, es *EncState) []byte {
	dst = append(dst, applyColor(es, t, DelimColor, open)...)
	for i, e := range elems {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = appendForm(dst, e, es)
	}
	return append(dst, applyColor(es, t, DelimColor, shut)...)
}

func appendMap(dst []byte, m *form.Map, es *EncState) []byte {
	entries := m.Entries()
	if es.sorted {
		entries = form.SortedEntries(m)
	}
	dst = append(dst, applyColor(es, form.MapType, DelimColor, "{")...)
	for i, e := range entries {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = appendForm(dst, e.Key, es)
		dst = append(dst, ' ')
		dst = appendForm(dst, e.Value, es)
	}
	return append(dst, applyColor(es, form.MapType, DelimColor, "}")...)
}
