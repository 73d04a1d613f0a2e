package form

import (
	"testing"

	"github.com/zachlisp/go-zachlisp/token"
)

func TestNewMapOdd(t *testing.T) {
	m := NewMap(Int(1))
	re, ok := m.(*ReaderError)
	if !ok {
		t.Fatalf("expected *ReaderError, got %T", m)
	}
	if re.Message != "Map must contain even number of forms" {
		t.Errorf("unexpected message %q", re.Message)
	}
	if re.Token != nil {
		t.Errorf("expected no token, got %v", re.Token)
	}
}

func TestMapGet(t *testing.T) {
	m := NewMap(Int(1), Int(2), Sym("a"), Str("b")).(*Map)
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
	v, ok := m.Get(Int(1))
	if !ok || !Equal(v, Int(2)) {
		t.Errorf("Get(1) = %v, %t", v, ok)
	}
	if _, ok := m.Get(Str("a")); ok {
		t.Error("string \"a\" should not find symbol key a")
	}
}

func TestMapDuplicateKeysKeepFirst(t *testing.T) {
	m := NewMap(Int(1), Sym("first"), Int(1), Sym("second")).(*Map)
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
	v, _ := m.Get(Int(1))
	if !Equal(v, Sym("first")) {
		t.Errorf("expected first value to be kept, got %v", v)
	}
}

func TestSetDedup(t *testing.T) {
	s := NewSet(Int(1), Int(2), Int(1), NewList(Int(1)), NewList(Int(1)))
	if s.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", s.Len())
	}
	if !s.Has(NewList(Int(1))) {
		t.Error("expected structurally equal list to be a member")
	}
	if s.Has(NewVector(Int(1))) {
		t.Error("vector should not match list member")
	}
}

func TestSetKeepsHashCollisions(t *testing.T) {
	// a symbol and a string with the same text share a token value and so
	// hash alike, but they are different forms.
	if Hash(Sym("a")) != Hash(Str("a")) {
		t.Fatal("expected symbol and string with same text to collide")
	}
	s := NewSet(Sym("a"), Str("a"))
	if s.Len() != 2 {
		t.Errorf("colliding but distinct elements merged: len=%d", s.Len())
	}
	if Equal(Sym("a"), Str("a")) {
		t.Error("symbol and string should not be equal")
	}
}

func TestInsertionOrderIndependence(t *testing.T) {
	inner1 := NewSet(Int(1), Int(2), Int(3))
	inner2 := NewSet(Int(3), Int(1), Int(2))
	m1 := NewMap(inner1, Sym("x"), Sym("k"), NewVector(Int(1), Int(2)))
	m2 := NewMap(Sym("k"), NewVector(Int(1), Int(2)), inner2, Sym("x"))

	tests := []struct {
		name string
		a, b Form
	}{
		{"sets", inner1, inner2},
		{"maps", m1, m2},
		{"set of maps", NewSet(m1, Int(0)), NewSet(Int(0), m2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Equal(tt.a, tt.b) || !Equal(tt.b, tt.a) {
				t.Error("expected equal")
			}
			if Hash(tt.a) != Hash(tt.b) {
				t.Error("expected equal hashes")
			}
			if Compare(tt.a, tt.b) != 0 {
				t.Error("expected Compare == 0")
			}
		})
	}
}

func TestOrderedCollections(t *testing.T) {
	a := NewVector(Int(1), Int(2))
	b := NewVector(Int(2), Int(1))
	if Equal(a, b) {
		t.Error("[1 2] should differ from [2 1]")
	}
	if Hash(a) == Hash(b) {
		t.Error("[1 2] and [2 1] should hash differently")
	}
	if Equal(NewList(Int(1)), NewVector(Int(1))) {
		t.Error("list and vector with same elements should differ")
	}
}

func TestMapAsKey(t *testing.T) {
	k1 := NewMap(Int(1), Int(2), Int(3), Int(4))
	k2 := NewMap(Int(3), Int(4), Int(1), Int(2))
	outer := NewMap(k1, Sym("found")).(*Map)
	v, ok := outer.Get(k2)
	if !ok || !Equal(v, Sym("found")) {
		t.Errorf("lookup by equal map failed: %v %t", v, ok)
	}
}

func TestEqualErrors(t *testing.T) {
	tok := token.Token{Type: token.TSpecialChar, Value: token.CharVal(')')}
	tok2 := token.Token{Type: token.TSpecialChar, Value: token.CharVal(')'), Pos: token.Pos{Line: 3, Col: 9}}
	if !Equal(NewError("x", &tok), NewError("x", &tok2)) {
		t.Error("errors with equal tokens should be equal")
	}
	if Equal(NewError("x", &tok), NewError("x", nil)) {
		t.Error("error with token should differ from error without")
	}
	if Equal(NewError("x", nil), NewError("y", nil)) {
		t.Error("errors with different messages should differ")
	}
	if Hash(NewError("x", &tok)) != Hash(NewError("x", nil)) {
		t.Error("error hash should depend on message only")
	}
}

func TestEquivalence(t *testing.T) {
	forms := []Form{
		Int(1), Float(1), Bool(true), Sym("true"), Str("s"), Sym("s"),
		NewList(), NewVector(), NewMapFromEntries(nil), NewSet(),
		NewList(Int(1), NewSet(Int(2))),
		NewMap(NewSet(Int(1)), NewList()),
		NewError("m", nil),
	}
	for i, a := range forms {
		if !Equal(a, a) {
			t.Errorf("%d: not reflexive", i)
		}
		for j, b := range forms {
			if Equal(a, b) != Equal(b, a) {
				t.Errorf("%d,%d: not symmetric", i, j)
			}
			if Equal(a, b) && Hash(a) != Hash(b) {
				t.Errorf("%d,%d: equal but hash differs", i, j)
			}
			if (Compare(a, b) == 0) != Equal(a, b) {
				t.Errorf("%d,%d: Compare inconsistent with Equal", i, j)
			}
			if Compare(a, b) != -Compare(b, a) {
				t.Errorf("%d,%d: Compare not antisymmetric", i, j)
			}
		}
	}
}

func TestWalk(t *testing.T) {
	x := NewList(Int(1), NewVector(Int(2)), NewMap(Int(3), NewSet(Int(4))))
	n := 0
	Walk(x, func(Form) { n++ })
	// list, 1, vector, 2, map, 3, set, 4
	if n != 8 {
		t.Errorf("expected 8 forms, got %d", n)
	}
}
