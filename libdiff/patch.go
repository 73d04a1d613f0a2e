package libdiff

import (
	"fmt"

	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Patch applies c to x. Patch fails with ErrPatch when x is not the form
// c was computed from.
func Patch(x form.Form, c *Change) (form.Form, error) {
	if c == nil {
		return x, nil
	}
	switch c.Op {
	case OpReplace, OpInsert, OpDelete:
		if !form.Equal(x, c.From) {
			return nil, mismatch(x, c.From)
		}
		return c.To, nil
	case OpString:
		return patchString(x, c)
	case OpElems:
		switch y := x.(type) {
		case *form.List:
			elems, err := PatchSeq(y.Elems, c)
			if err != nil {
				return nil, err
			}
			return form.NewList(elems...), nil
		case *form.Vector:
			elems, err := PatchSeq(y.Elems, c)
			if err != nil {
				return nil, err
			}
			return form.NewVector(elems...), nil
		}
	case OpEntries:
		if m, ok := x.(*form.Map); ok {
			return patchMap(m, c)
		}
	case OpMembers:
		if s, ok := x.(*form.Set); ok {
			return patchSet(s, c)
		}
	}
	return nil, fmt.Errorf("%w: cannot apply %s change to %s", ErrPatch, c.Op, typeName(x))
}

// PatchSeq applies an OpElems change to a sequence of forms.
func PatchSeq(elems []form.Form, c *Change) ([]form.Form, error) {
	if c == nil {
		return elems, nil
	}
	if c.Op != OpElems {
		return nil, fmt.Errorf("%w: cannot apply %s change to a sequence", ErrPatch, c.Op)
	}
	res := make([]form.Form, 0, len(elems))
	fi := 0
	for _, ch := range c.Changes {
		if ch.FromIndex > len(elems) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrPatch, ch.FromIndex)
		}
		for fi < ch.FromIndex {
			res = append(res, elems[fi])
			fi++
		}
		if ch.Op == OpInsert {
			res = append(res, ch.To)
			continue
		}
		if fi >= len(elems) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrPatch, fi)
		}
		if ch.Op == OpDelete {
			if !form.Equal(elems[fi], ch.From) {
				return nil, mismatch(elems[fi], ch.From)
			}
			fi++
			continue
		}
		p, err := Patch(elems[fi], ch)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
		fi++
	}
	return append(res, elems[fi:]...), nil
}

func patchString(x form.Form, c *Change) (form.Form, error) {
	s, ok := x.(*form.Scalar)
	if !ok || s.Token.Type != token.TString {
		return nil, fmt.Errorf("%w: string change applied to %s", ErrPatch, typeName(x))
	}
	dmp := diffpatch.New()
	if dmp.DiffText1(c.Text) != s.Token.Value.Text {
		return nil, mismatch(x, c.From)
	}
	tok := s.Token
	tok.Value = token.TextVal(dmp.DiffText2(c.Text))
	return form.NewScalar(tok), nil
}

func patchMap(m *form.Map, c *Change) (form.Form, error) {
	// entry changes indexed by key
	var inserts []form.Entry
	changes := make([]form.Entry, 0, len(c.Changes))
	for i, ch := range c.Changes {
		if ch.Op == OpInsert {
			if _, ok := m.Get(ch.Key); ok {
				return nil, fmt.Errorf("%w: key %s already present", ErrPatch, encode.MustString(ch.Key))
			}
			inserts = append(inserts, form.Entry{Key: ch.Key, Value: ch.To})
			continue
		}
		if _, ok := m.Get(ch.Key); !ok {
			return nil, fmt.Errorf("%w: key %s not present", ErrPatch, encode.MustString(ch.Key))
		}
		changes = append(changes, form.Entry{Key: ch.Key, Value: form.Int(int64(i))})
	}
	byKey := form.NewMapFromEntries(changes)

	entries := make([]form.Entry, 0, m.Len()+len(inserts))
	for _, e := range m.Entries() {
		ref, ok := byKey.Get(e.Key)
		if !ok {
			entries = append(entries, e)
			continue
		}
		ch := c.Changes[ref.(*form.Scalar).Token.Value.Int]
		if ch.Op == OpDelete {
			if !form.Equal(e.Value, ch.From) {
				return nil, mismatch(e.Value, ch.From)
			}
			continue
		}
		v, err := Patch(e.Value, ch)
		if err != nil {
			return nil, err
		}
		entries = append(entries, form.Entry{Key: e.Key, Value: v})
	}
	return form.NewMapFromEntries(append(entries, inserts...)), nil
}

func patchSet(s *form.Set, c *Change) (form.Form, error) {
	var dels, adds []form.Form
	for _, ch := range c.Changes {
		switch ch.Op {
		case OpDelete:
			if !s.Has(ch.From) {
				return nil, fmt.Errorf("%w: %s not a member", ErrPatch, encode.MustString(ch.From))
			}
			dels = append(dels, ch.From)
		case OpInsert:
			adds = append(adds, ch.To)
		default:
			return nil, fmt.Errorf("%w: %s change in a set", ErrPatch, ch.Op)
		}
	}
	deleted := form.NewSet(dels...)
	elems := make([]form.Form, 0, s.Len()+len(adds))
	for _, e := range s.Elems() {
		if !deleted.Has(e) {
			elems = append(elems, e)
		}
	}
	return form.NewSet(append(elems, adds...)...), nil
}

func mismatch(got, want form.Form) error {
	return fmt.Errorf("%w: found %s, expected %s", ErrPatch, show(got), show(want))
}

func show(x form.Form) string {
	if x == nil {
		return "nothing"
	}
	return encode.MustString(x)
}

func typeName(x form.Form) string {
	if x == nil {
		return "nothing"
	}
	return x.Type().String()
}
