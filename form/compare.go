package form

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/zachlisp/go-zachlisp/token"
)

// Compare returns an integer comparing two forms.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Compare(a, b) == 0 exactly when Equal(a, b).
func Compare(a, b Form) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Type(), b.Type()); c != 0 {
		return c
	}

	switch x := a.(type) {
	case *ReaderError:
		return compareErrors(x, b.(*ReaderError))
	case *Scalar:
		return compareTokens(&x.Token, &b.(*Scalar).Token)
	case *List:
		return compareElems(x.Elems, b.(*List).Elems)
	case *Vector:
		return compareElems(x.Elems, b.(*Vector).Elems)
	case *Map:
		return compareEntries(sortedEntries(x), sortedEntries(b.(*Map)))
	case *Set:
		return compareElems(sortedElems(x), sortedElems(b.(*Set)))
	}
	return 0
}

func compareErrors(a, b *ReaderError) int {
	if c := strings.Compare(a.Message, b.Message); c != 0 {
		return c
	}
	switch {
	case a.Token == nil && b.Token == nil:
		return 0
	case a.Token == nil:
		return -1
	case b.Token == nil:
		return 1
	}
	return compareTokens(a.Token, b.Token)
}

func compareTokens(a, b *token.Token) int {
	if c := compareValues(a.Value, b.Value); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

func compareValues(a, b token.Value) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	switch a.Kind {
	case token.BoolValue:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case token.CharValue:
		return cmp.Compare(a.Char, b.Char)
	case token.IntValue:
		return cmp.Compare(a.Int, b.Int)
	case token.FloatValue:
		if c := cmp.Compare(a.Float, b.Float); c != 0 {
			return c
		}
		// 0 and -0 compare equal above but are distinct values.
		return cmp.Compare(math.Float64bits(a.Float), math.Float64bits(b.Float))
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

func compareElems(a, b []Form) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareEntries(a, b []Entry) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// SortedEntries returns the entries of m ordered by key.
func SortedEntries(m *Map) []Entry {
	return sortedEntries(m)
}

// SortedElems returns the elements of s in ascending order.
func SortedElems(s *Set) []Form {
	return sortedElems(s)
}

func sortedEntries(m *Map) []Entry {
	res := slices.Clone(m.entries)
	slices.SortFunc(res, func(a, b Entry) int {
		return Compare(a.Key, b.Key)
	})
	return res
}

func sortedElems(s *Set) []Form {
	res := slices.Clone(s.elems)
	slices.SortFunc(res, Compare)
	return res
}
