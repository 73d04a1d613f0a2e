package form

import (
	"github.com/zachlisp/go-zachlisp/token"
)

// Form is a node of a read tree. The set of implementations is closed.
type Form interface {
	Type() Type
	form()
}

// ReaderError is a parse failure represented as a value in the tree.
// Token is the offending token, or nil when there is none (for example
// when input ended inside a collection).
type ReaderError struct {
	Message string
	Token   *token.Token
}

type Scalar struct {
	Token token.Token
}

type List struct {
	Elems []Form
}

type Vector struct {
	Elems []Form
}

type Entry struct {
	Key   Form
	Value Form
}

// Map is an immutable association from forms to forms.
type Map struct {
	entries []Entry
	index   map[uint64][]int
	hash    uint64
}

// Set is an immutable collection of distinct forms.
type Set struct {
	elems []Form
	index map[uint64][]int
	hash  uint64
}

func (*ReaderError) Type() Type { return ReaderErrorType }
func (*Scalar) Type() Type      { return ScalarType }
func (*List) Type() Type        { return ListType }
func (*Vector) Type() Type      { return VectorType }
func (*Map) Type() Type         { return MapType }
func (*Set) Type() Type         { return SetType }

func (*ReaderError) form() {}
func (*Scalar) form()      {}
func (*List) form()        {}
func (*Vector) form()      {}
func (*Map) form()         {}
func (*Set) form()         {}

func (e *ReaderError) Error() string {
	if e.Token == nil {
		return e.Message
	}
	return e.Message + " at " + e.Token.Pos.String()
}

func NewError(msg string, tok *token.Token) *ReaderError {
	return &ReaderError{Message: msg, Token: tok}
}

func NewScalar(tok token.Token) *Scalar {
	return &Scalar{Token: tok}
}

// Sym returns a symbol scalar with no source position.
func Sym(name string) *Scalar {
	return &Scalar{Token: token.Token{Type: token.TSymbol, Value: token.TextVal(name)}}
}

func Int(v int64) *Scalar {
	return &Scalar{Token: token.Token{Type: token.TNumber, Value: token.IntVal(v)}}
}

func Float(v float64) *Scalar {
	return &Scalar{Token: token.Token{Type: token.TNumber, Value: token.FloatVal(v)}}
}

func Bool(v bool) *Scalar {
	return &Scalar{Token: token.Token{Type: token.TSymbol, Value: token.BoolVal(v)}}
}

// Str returns a string literal scalar holding s without surrounding quotes.
func Str(s string) *Scalar {
	return &Scalar{Token: token.Token{Type: token.TString, Value: token.TextVal(s)}}
}

func NewList(elems ...Form) *List {
	return &List{Elems: elems}
}

func NewVector(elems ...Form) *Vector {
	return &Vector{Elems: elems}
}

// NewMap pairs kvs left to right into entries. An odd number of forms
// yields a *ReaderError instead of a map.
func NewMap(kvs ...Form) Form {
	if len(kvs)%2 != 0 {
		return NewError("Map must contain even number of forms", nil)
	}
	entries := make([]Entry, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		entries = append(entries, Entry{Key: kvs[i], Value: kvs[i+1]})
	}
	return NewMapFromEntries(entries)
}

// NewMapFromEntries builds a map from entries. When a key occurs more than
// once, the first entry for it is kept.
func NewMapFromEntries(entries []Entry) *Map {
	m := &Map{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[uint64][]int, len(entries)),
	}
	hashes := make([]uint64, 0, len(entries))
	for _, e := range entries {
		h := Hash(e.Key)
		if m.find(h, e.Key) != -1 {
			continue
		}
		m.index[h] = append(m.index[h], len(m.entries))
		m.entries = append(m.entries, e)
		hashes = append(hashes, combine(h, Hash(e.Value)))
	}
	m.hash = unordered(MapType, hashes)
	return m
}

func (m *Map) find(h uint64, key Form) int {
	for _, i := range m.index[h] {
		if Equal(m.entries[i].Key, key) {
			return i
		}
	}
	return -1
}

func (m *Map) Len() int {
	return len(m.entries)
}

func (m *Map) Get(key Form) (Form, bool) {
	i := m.find(Hash(key), key)
	if i == -1 {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Entries returns the entries in insertion order. The returned slice must
// not be modified.
func (m *Map) Entries() []Entry {
	return m.entries
}

// NewSet builds a set from elems, keeping the first of any structurally
// equal elements.
func NewSet(elems ...Form) *Set {
	s := &Set{
		elems: make([]Form, 0, len(elems)),
		index: make(map[uint64][]int, len(elems)),
	}
	hashes := make([]uint64, 0, len(elems))
	for _, e := range elems {
		h := Hash(e)
		if s.find(h, e) != -1 {
			continue
		}
		s.index[h] = append(s.index[h], len(s.elems))
		s.elems = append(s.elems, e)
		hashes = append(hashes, h)
	}
	s.hash = unordered(SetType, hashes)
	return s
}

func (s *Set) find(h uint64, elem Form) int {
	for _, i := range s.index[h] {
		if Equal(s.elems[i], elem) {
			return i
		}
	}
	return -1
}

func (s *Set) Len() int {
	return len(s.elems)
}

func (s *Set) Has(elem Form) bool {
	return s.find(Hash(elem), elem) != -1
}

// Elems returns the elements in insertion order. The returned slice must
// not be modified.
func (s *Set) Elems() []Form {
	return s.elems
}

// Walk calls f on every form of the tree rooted at x in depth first order,
// parents before children. Map entries visit the key, then the value.
func Walk(x Form, f func(Form)) {
	f(x)
	switch y := x.(type) {
	case *List:
		for _, e := range y.Elems {
			Walk(e, f)
		}
	case *Vector:
		for _, e := range y.Elems {
			Walk(e, f)
		}
	case *Map:
		for _, e := range y.entries {
			Walk(e.Key, f)
			Walk(e.Value, f)
		}
	case *Set:
		for _, e := range y.elems {
			Walk(e, f)
		}
	}
}
