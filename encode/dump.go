package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

// dump is the structural rendering of a form used by the json and yaml
// formats.
type dump struct {
	Type    form.Type   `json:"type" yaml:"type"`
	Token   string      `json:"token,omitempty" yaml:"token,omitempty"`
	Kind    string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value   any         `json:"value,omitempty" yaml:"value,omitempty"`
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`
	Pos     *dumpPos    `json:"pos,omitempty" yaml:"pos,omitempty"`
	Elems   []*dump     `json:"elems,omitempty" yaml:"elems,omitempty"`
	Entries []dumpEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type dumpPos struct {
	Line int `json:"line" yaml:"line"`
	Col  int `json:"col" yaml:"col"`
}

type dumpEntry struct {
	Key   *dump `json:"key" yaml:"key"`
	Value *dump `json:"value" yaml:"value"`
}

func toDump(f form.Form, es *EncState) *dump {
	if f == nil {
		return nil
	}
	d := &dump{Type: f.Type()}
	switch x := f.(type) {
	case *form.ReaderError:
		d.Message = x.Message
		if x.Token != nil {
			d.Token = x.Token.Type.String()
			d.Pos = posOf(x.Token)
		}
	case *form.Scalar:
		d.Token = x.Token.Type.String()
		d.Kind = x.Token.Value.Kind.String()
		d.Value = dumpValue(x.Token.Value)
		d.Pos = posOf(&x.Token)
	case *form.List:
		d.Elems = dumpElems(x.Elems, es)
	case *form.Vector:
		d.Elems = dumpElems(x.Elems, es)
	case *form.Map:
		entries := x.Entries()
		if es.sorted {
			entries = form.SortedEntries(x)
		}
		d.Entries = make([]dumpEntry, len(entries))
		for i, e := range entries {
			d.Entries[i] = dumpEntry{Key: toDump(e.Key, es), Value: toDump(e.Value, es)}
		}
	case *form.Set:
		elems := x.Elems()
		if es.sorted {
			elems = form.SortedElems(x)
		}
		d.Elems = dumpElems(elems, es)
	}
	return d
}

func dumpElems(elems []form.Form, es *EncState) []*dump {
	if len(elems) == 0 {
		return nil
	}
	res := make([]*dump, len(elems))
	for i, e := range elems {
		res[i] = toDump(e, es)
	}
	return res
}

func dumpValue(v token.Value) any {
	switch v.Kind {
	case token.BoolValue:
		return v.Bool
	case token.CharValue:
		return string(v.Char)
	case token.IntValue:
		return v.Int
	case token.FloatValue:
		return v.Float
	default:
		return v.Text
	}
}

// posOf returns nil for tokens built without a source position.
func posOf(tok *token.Token) *dumpPos {
	if tok.Pos.Line == 0 {
		return nil
	}
	return &dumpPos{Line: tok.Pos.Line, Col: tok.Pos.Col}
}

func encodeJSON(f form.Form, w io.Writer, es *EncState) error {
	d, err := json.Marshal(toDump(f, es))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(f form.Form, w io.Writer, es *EncState) error {
	d, err := yaml.Marshal(toDump(f, es))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
