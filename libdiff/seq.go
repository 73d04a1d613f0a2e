package libdiff

import (
	"strconv"

	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSeq diffs two sequences of forms by position.
//
//  1. each form is summarized: collections by their type, scalars by type
//     and value
//  2. the sequences of summaries are diffed
//  3. forms with matching summaries are diffed recursively
//  4. a run of deletions followed by insertions pairs up into
//     replacements
func DiffSeq(from, to []form.Form) *Change {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []*Change
	var pending []*Change
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				c := MakeDiff(from[fi], nil)
				c.FromIndex, c.ToIndex = fi, ti
				res = append(res, c)
				pending = append(pending, c)
				fi++
			}
		case diffpatch.DiffEqual:
			pending = nil
			for range diff.Text {
				if c := Diff(from[fi], to[ti]); c != nil {
					c.FromIndex, c.ToIndex = fi, ti
					res = append(res, c)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if len(pending) != 0 {
					del := pending[0]
					pending = pending[1:]
					// the deletion slot becomes a replacement
					c := Diff(del.From, to[ti])
					c.FromIndex, c.ToIndex = del.FromIndex, ti
					*del = *c
					ti++
					for _, p := range pending {
						p.ToIndex = ti
					}
					continue
				}
				c := MakeDiff(nil, to[ti])
				c.FromIndex, c.ToIndex = fi, ti
				res = append(res, c)
				ti++
			}
		}
	}
	if len(res) == 0 {
		return nil
	}
	return &Change{Op: OpElems, Changes: res}
}

func summaries(m map[string]rune, forms []form.Form) []rune {
	rs := make([]rune, len(forms))
	for i, f := range forms {
		sum := summaryStr(f)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(f form.Form) string {
	switch x := f.(type) {
	case *form.Scalar:
		v := x.Token.Value
		prefix := x.Token.Type.String() + "-"
		switch v.Kind {
		case token.BoolValue:
			return prefix + "b-" + strconv.FormatBool(v.Bool)
		case token.CharValue:
			return prefix + "c-" + string(v.Char)
		case token.IntValue:
			return prefix + "i-" + strconv.FormatInt(v.Int, 10)
		case token.FloatValue:
			return prefix + "f-" + strconv.FormatFloat(v.Float, 'g', -1, 64)
		default:
			return prefix + "t-" + v.Text
		}
	case *form.ReaderError:
		return x.Type().String() + "-" + x.Message
	case nil:
		return "nil"
	default:
		return f.Type().String()
	}
}
