package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

func printAll(forms []form.Form) []string {
	res := make([]string, len(forms))
	for i, f := range forms {
		res[i] = encode.MustString(f)
	}
	return res
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"only separators", "; c\n  , ,\n", []string{}},
		{"list", "(1 2 3)", []string{"(1 2 3)"}},
		{"map", "{1 2}", []string{"{1 2}"}},
		{"odd map", "{1}", []string{`#ReaderError "Map must contain even number of forms"`}},
		{"odd map continues", "{1} 2", []string{`#ReaderError "Map must contain even number of forms"`, "2"}},
		{"unclosed list", "(1 2", []string{`#ReaderError "EOF: no ) found"`}},
		{"unclosed after form", "{1 2} (", []string{"{1 2}", `#ReaderError "EOF: no ) found"`}},
		{"unclosed set", "#{1", []string{`#ReaderError "EOF: no } found"`}},
		{"unmatched", ")", []string{`#ReaderError "Unmatched delimiter: )"`}},
		{"unmatched stops read", ") 1", []string{`#ReaderError "Unmatched delimiter: )"`}},
		{"unmatched after forms", "(a ) b) c", []string{"(a)", "b", `#ReaderError "Unmatched delimiter: )"`}},
		{"mismatched list", "(]", []string{`#ReaderError "Unmatched delimiter: ]"`}},
		{"mismatched map", "{1 2 ] 3}", []string{`#ReaderError "Unmatched delimiter: ]"`}},
		{"quote", "'x", []string{"(quote x)"}},
		{"splice unquote", "~@x", []string{"(splice-unquote x)"}},
		{"quasiquote", "`(a ~b)", []string{"(quasiquote (a (unquote b)))"}},
		{"deref", "@a", []string{"(deref a)"}},
		{"quote collection", "'[1 #{2}]", []string{"(quote [1 #{2}])"}},
		{"meta", "^{:a 1} x", []string{"(with-meta x {:a 1})"}},
		{"meta nested", "^m ^n x", []string{"(with-meta (with-meta x n) m)"}},
		{"quote at eof", "'", []string{`#ReaderError "EOF: Nothing found after quote"`}},
		{"quote before comment", "(a) ~@ ; nothing", []string{"(a)", `#ReaderError "EOF: Nothing found after quote"`}},
		{"caret at eof", "^", []string{`#ReaderError "EOF: Nothing found after ^"`}},
		{"meta without target", "^m", []string{`#ReaderError "EOF: Nothing found after metadata"`}},
		{"quote of closer", "(')", []string{`#ReaderError "EOF: no ) found"`}},
		{"string", `"abc"`, []string{`"abc"`}},
		{"empty string", `""`, []string{`""`}},
		{"escaped quote", `"a\"b"`, []string{`"a\"b"`}},
		{"unterminated string", `"abc`, []string{`#ReaderError "EOF: unbalanced quote"`}},
		{"lone quote", `"`, []string{`#ReaderError "EOF: unbalanced quote"`}},
		{"escaped closing quote", `"abc\"`, []string{`#ReaderError "EOF: unbalanced quote"`}},
		{"string in list", `(1 "x`, []string{`#ReaderError "EOF: no ) found"`}},
		{"several", "[1 {a b} #{c}] 2", []string{"[1 {a b} #{c}]", "2"}},
		{"set dedup", "#{1 1 2 (3) (3)}", []string{"#{1 2 (3)}"}},
		{"map first key kept", "{a 1 a 2}", []string{"{a 1}"}},
		{"comments", "1 ; one\n 2", []string{"1", "2"}},
		{"bools", "true false", []string{"true", "false"}},
		{"float", "1.5", []string{"1.500000"}},
		{"nil symbol", "nil", []string{"nil"}},
		{"commas", "[1,2,,3]", []string{"[1 2 3]"}},
		{"nested", "(def f (fn [x] {:k #{x}}))", []string{"(def f (fn [x] {:k #{x}}))"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := printAll(ReadString(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("read %q (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestReadStructure(t *testing.T) {
	tests := []struct {
		in   string
		want form.Form
	}{
		{"(1 2 3)", form.NewList(form.Int(1), form.Int(2), form.Int(3))},
		{"'x", form.NewList(form.Sym("quote"), form.Sym("x"))},
		{"~@x", form.NewList(form.Sym("splice-unquote"), form.Sym("x"))},
		{"^m x", form.NewList(form.Sym("with-meta"), form.Sym("x"), form.Sym("m"))},
		{`["s" 2.5 true]`, form.NewVector(form.Str("s"), form.Float(2.5), form.Bool(true))},
		{"#{2 1}", form.NewSet(form.Int(1), form.Int(2))},
		{"{b 2 a 1}", form.NewMap(form.Sym("a"), form.Int(1), form.Sym("b"), form.Int(2))},
	}
	for _, tt := range tests {
		forms := ReadString(tt.in)
		if len(forms) != 1 {
			t.Errorf("%q: expected 1 form, got %d", tt.in, len(forms))
			continue
		}
		if !form.Equal(forms[0], tt.want) {
			t.Errorf("%q: got %s, want %s", tt.in, encode.MustString(forms[0]), encode.MustString(tt.want))
		}
	}

	m, ok := ReadString("{1 2}")[0].(*form.Map)
	if !ok {
		t.Fatal("expected a map")
	}
	if v, ok := m.Get(form.Int(1)); !ok || !form.Equal(v, form.Int(2)) {
		t.Errorf("Get(1) = %v, %t", v, ok)
	}
}

func TestReadErrorTokens(t *testing.T) {
	tests := []struct {
		in      string
		msg     string
		wantTok *token.Token
	}{
		{")", "Unmatched delimiter: )",
			&token.Token{Type: token.TSpecialChar, Value: token.CharVal(')'), Pos: token.Pos{Line: 1, Col: 1}}},
		{"[1\n }", "Unmatched delimiter: }",
			&token.Token{Type: token.TSpecialChar, Value: token.CharVal('}'), Pos: token.Pos{Line: 2, Col: 5}}},
		{`  "ab`, "EOF: unbalanced quote",
			&token.Token{Type: token.TString, Value: token.TextVal(`"ab`), Pos: token.Pos{Line: 1, Col: 3}}},
		{" '", "EOF: Nothing found after quote",
			&token.Token{Type: token.TSpecialChar, Value: token.CharVal('\''), Pos: token.Pos{Line: 1, Col: 2}}},
		{"(1 2", "EOF: no ) found", nil},
		{"{1}", "Map must contain even number of forms", nil},
	}
	for _, tt := range tests {
		forms := ReadString(tt.in)
		if len(forms) != 1 {
			t.Fatalf("%q: expected 1 form, got %d", tt.in, len(forms))
		}
		re, ok := forms[0].(*form.ReaderError)
		if !ok {
			t.Fatalf("%q: expected *form.ReaderError, got %T", tt.in, forms[0])
		}
		if re.Message != tt.msg {
			t.Errorf("%q: message %q, want %q", tt.in, re.Message, tt.msg)
		}
		if diff := cmp.Diff(tt.wantTok, re.Token); diff != "" {
			t.Errorf("%q: token (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestSugarHeadPosition(t *testing.T) {
	forms := ReadString("\n  'x")
	l := forms[0].(*form.List)
	head := l.Elems[0].(*form.Scalar)
	want := token.Token{Type: token.TSymbol, Value: token.TextVal("quote"), Pos: token.Pos{Line: 2, Col: 4}}
	if diff := cmp.Diff(want, head.Token); diff != "" {
		t.Errorf("head token (-want +got):\n%s", diff)
	}
}

func nested(open, shut string, n int) string {
	return strings.Repeat(open, n) + strings.Repeat(shut, n)
}

func TestMaxDepth(t *testing.T) {
	if got := printAll(ReadString(nested("(", ")", 3), MaxDepth(3))); got[0] != "((()))" {
		t.Errorf("depth 3 at limit 3: %v", got)
	}
	tests := []struct {
		name string
		in   string
		opts []ParseOption
	}{
		{"limit", nested("(", ")", 4), []ParseOption{MaxDepth(3)}},
		{"sugar", strings.Repeat("'", 4) + "x", []ParseOption{MaxDepth(3)}},
		{"mixed", "[#{'(x)}]", []ParseOption{MaxDepth(3)}},
		{"default", strings.Repeat("[", 100000), nil},
		{"default sugar", strings.Repeat("@", 100000) + "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms := ReadString(tt.in, tt.opts...)
			if len(forms) != 1 {
				t.Fatalf("expected 1 form, got %d", len(forms))
			}
			re, ok := forms[0].(*form.ReaderError)
			if !ok {
				t.Fatalf("expected *form.ReaderError, got %s", encode.MustString(forms[0]))
			}
			if re.Message != "Max nesting depth exceeded" {
				t.Errorf("unexpected message %q", re.Message)
			}
			if re.Token == nil {
				t.Error("expected the offending token")
			}
		})
	}
	if got := ReadString(nested("(", ")", DefaultMaxDepth)); len(got) != 1 {
		t.Fatalf("expected 1 form at default depth, got %d", len(got))
	} else if _, isErr := got[0].(*form.ReaderError); isErr {
		t.Error("default depth rejected")
	}
	// non-positive limits select the default
	if got := printAll(ReadString(nested("[", "]", 10), MaxDepth(0))); got[0] != nested("[", "]", 10) {
		t.Errorf("MaxDepth(0) rejected shallow input: %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"(1 2 3)",
		"[a b (c [d])] x 12 4.25",
		`("str" true false sym [] ())`,
		"(+ 1 (* 2 3.5) [[[]]])",
		"{a [1 2] #{3} {4 5}}",
	}
	for _, in := range inputs {
		forms := ReadString(in)
		buf := bytes.NewBuffer(nil)
		if err := encode.EncodeAll(forms, buf); err != nil {
			t.Fatal(err)
		}
		again := Read(buf.Bytes())
		if len(again) != len(forms) {
			t.Fatalf("%q: reread %d forms, want %d", in, len(again), len(forms))
		}
		for i := range forms {
			if !form.Equal(forms[i], again[i]) {
				t.Errorf("%q: form %d changed: %s -> %s", in, i,
					encode.MustString(forms[i]), encode.MustString(again[i]))
			}
		}
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[form.Form]token.Pos{}
	forms := ReadString("(a\n [b] 'c)", ParsePositions(pos))
	l := forms[0].(*form.List)
	vec := l.Elems[1]
	quoted := l.Elems[2]
	tests := []struct {
		name string
		f    form.Form
		want token.Pos
	}{
		{"list", l, token.Pos{Line: 1, Col: 1}},
		{"symbol", l.Elems[0], token.Pos{Line: 1, Col: 2}},
		{"vector", vec, token.Pos{Line: 2, Col: 5}},
		{"vector elem", vec.(*form.Vector).Elems[0], token.Pos{Line: 2, Col: 6}},
		{"quote", quoted, token.Pos{Line: 2, Col: 9}},
	}
	for _, tt := range tests {
		got, ok := pos[tt.f]
		if !ok {
			t.Errorf("%s: no position recorded", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}
