package libdiff

import (
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

// Diff returns the change from from to to, or nil if they are equal.
func Diff(from, to form.Form) *Change {
	if form.Equal(from, to) {
		return nil
	}
	if from == nil || to == nil || from.Type() != to.Type() {
		return MakeDiff(from, to)
	}
	switch x := from.(type) {
	case *form.Scalar:
		y := to.(*form.Scalar)
		if x.Token.Type == token.TString && y.Token.Type == token.TString {
			return DiffString(x, y)
		}
	case *form.List:
		return DiffSeq(x.Elems, to.(*form.List).Elems)
	case *form.Vector:
		return DiffSeq(x.Elems, to.(*form.Vector).Elems)
	case *form.Map:
		return DiffMap(x, to.(*form.Map))
	case *form.Set:
		return DiffSet(x, to.(*form.Set))
	}
	return MakeDiff(from, to)
}

// DiffMap diffs by key. Keys only in from are deleted, keys only in to are
// inserted and shared keys diff their values.
func DiffMap(from, to *form.Map) *Change {
	var res []*Change
	for _, e := range from.Entries() {
		v, ok := to.Get(e.Key)
		if !ok {
			c := MakeDiff(e.Value, nil)
			c.Key = e.Key
			res = append(res, c)
			continue
		}
		if c := Diff(e.Value, v); c != nil {
			c.Key = e.Key
			res = append(res, c)
		}
	}
	for _, e := range to.Entries() {
		if _, ok := from.Get(e.Key); ok {
			continue
		}
		c := MakeDiff(nil, e.Value)
		c.Key = e.Key
		res = append(res, c)
	}
	if len(res) == 0 {
		return nil
	}
	return &Change{Op: OpEntries, Changes: res}
}

func DiffSet(from, to *form.Set) *Change {
	var res []*Change
	for _, e := range from.Elems() {
		if !to.Has(e) {
			res = append(res, MakeDiff(e, nil))
		}
	}
	for _, e := range to.Elems() {
		if !from.Has(e) {
			res = append(res, MakeDiff(nil, e))
		}
	}
	if len(res) == 0 {
		return nil
	}
	return &Change{Op: OpMembers, Changes: res}
}
