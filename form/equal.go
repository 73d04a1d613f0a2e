package form

// Equal reports whether a and b are structurally equal.
//
// Scalars are equal when their tokens have the same type and value
// (positions are ignored). Reader errors compare message and offending
// token. Lists and vectors compare element-wise. Maps are equal when they
// have the same keys mapped to equal values, sets when they have the same
// members, regardless of insertion order. Hashes are used only to find
// candidate keys and members, never as evidence of equality.
func Equal(a, b Form) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *ReaderError:
		y, ok := b.(*ReaderError)
		if !ok || x.Message != y.Message {
			return false
		}
		if x.Token == nil || y.Token == nil {
			return x.Token == y.Token
		}
		return x.Token.Equal(y.Token)
	case *Scalar:
		y, ok := b.(*Scalar)
		return ok && x.Token.Equal(&y.Token)
	case *List:
		y, ok := b.(*List)
		return ok && equalElems(x.Elems, y.Elems)
	case *Vector:
		y, ok := b.(*Vector)
		return ok && equalElems(x.Elems, y.Elems)
	case *Map:
		y, ok := b.(*Map)
		return ok && equalMaps(x, y)
	case *Set:
		y, ok := b.(*Set)
		return ok && equalSets(x, y)
	}
	return false
}

func equalElems(a, b []Form) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMaps(a, b *Map) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for _, e := range a.entries {
		v, ok := b.Get(e.Key)
		if !ok || !Equal(e.Value, v) {
			return false
		}
	}
	return true
}

func equalSets(a, b *Set) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	for _, e := range a.elems {
		if !b.Has(e) {
			return false
		}
	}
	return true
}
