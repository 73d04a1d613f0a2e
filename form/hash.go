package form

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"slices"

	"github.com/zachlisp/go-zachlisp/token"
)

// seed is shared by every hash computed in the process so that hashes of
// equal forms agree.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of x.
// Scalars hash their token value, reader errors hash their message only,
// lists and vectors combine element hashes in order, and maps and sets
// combine sorted entry hashes so that insertion order does not matter.
// It panics if x is nil.
func Hash(x Form) uint64 {
	if x == nil {
		panic("form: Hash called on nil form")
	}
	switch y := x.(type) {
	case *Map:
		return y.hash
	case *Set:
		return y.hash
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(x.Type()))

	switch y := x.(type) {
	case *ReaderError:
		h.WriteString(y.Message)
	case *Scalar:
		writeValue(&h, y.Token.Value)
	case *List:
		writeOrdered(&h, y.Elems)
	case *Vector:
		writeOrdered(&h, y.Elems)
	}
	return h.Sum64()
}

func writeValue(h *maphash.Hash, v token.Value) {
	var b [8]byte
	h.WriteByte(byte(v.Kind))
	switch v.Kind {
	case token.BoolValue:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case token.CharValue:
		h.WriteByte(v.Char)
	case token.IntValue:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case token.FloatValue:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float))
		h.Write(b[:])
	default:
		h.WriteString(v.Text)
	}
}

func writeOrdered(h *maphash.Hash, elems []Form) {
	var b [8]byte
	for _, e := range elems {
		binary.LittleEndian.PutUint64(b[:], Hash(e))
		h.Write(b[:])
	}
}

// combine hashes a key hash and a value hash into an entry hash.
func combine(k, v uint64) uint64 {
	var (
		h maphash.Hash
		b [16]byte
	)
	h.SetSeed(seed)
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	h.Write(b[:])
	return h.Sum64()
}

// unordered combines hashes independently of their order.
func unordered(t Type, hashes []uint64) uint64 {
	sorted := slices.Clone(hashes)
	slices.Sort(sorted)

	var (
		h maphash.Hash
		b [8]byte
	)
	h.SetSeed(seed)
	h.WriteByte(byte(t))
	for _, x := range sorted {
		binary.LittleEndian.PutUint64(b[:], x)
		h.Write(b[:])
	}
	return h.Sum64()
}
