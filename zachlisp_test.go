package zachlisp

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/parse"
)

func TestRep(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"(1 2 3)", "(1 2 3)\n"},
		{"1 'x [a, b]", "1\n(quote x)\n[a b]\n"},
		{"(1 2", "#ReaderError \"EOF: no ) found\"\n"},
		{"{1 2} {3}", "{1 2}\n#ReaderError \"Map must contain even number of forms\"\n"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Rep(tt.in)); diff != "" {
			t.Errorf("Rep(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestToolOptions(t *testing.T) {
	tool := DefaultTool()
	tool.ParseOpts = []parse.ParseOption{parse.MaxDepth(2)}
	tool.EncodeOpts = []encode.EncodeOption{encode.EncodeSorted(true)}
	buf := bytes.NewBuffer(nil)
	forms, err := tool.Rep([]byte("#{3 2 1} (((x)))"), buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
	want := "#{1 2 3}\n#ReaderError \"Max nesting depth exceeded\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}

	tool.Evaluator = nil
	if got := tool.Eval(forms); len(got) != 2 {
		t.Errorf("nil evaluator changed forms: %v", got)
	}
}

func TestErrors(t *testing.T) {
	forms := Read("[1 {2}] (a \"b")
	errs := Errors(forms)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Message != "Map must contain even number of forms" {
		t.Errorf("first error %q", errs[0].Message)
	}
	if errs[1].Message != "EOF: no ) found" {
		t.Errorf("second error %q", errs[1].Message)
	}
	if got := Errors(Read("(ok)")); len(got) != 0 {
		t.Errorf("unexpected errors %v", got)
	}
}

func TestEvalIdentity(t *testing.T) {
	in := Read("(+ 1 2)")
	out := Eval(in)
	if !form.Equal(in[0], out[0]) {
		t.Error("identity eval changed the form")
	}
}
