package libdiff

import (
	"errors"

	"github.com/zachlisp/go-zachlisp/form"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrPatch = errors.New("patch does not apply")

type Op int

const (
	OpReplace Op = iota
	OpInsert
	OpDelete
	OpString
	OpElems
	OpEntries
	OpMembers
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpReplace: "replace",
		OpInsert:  "insert",
		OpDelete:  "delete",
		OpString:  "string",
		OpElems:   "elems",
		OpEntries: "entries",
		OpMembers: "members",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Change is one node of a diff.
//
// For changes to an element of a list, vector or top level sequence,
// FromIndex and ToIndex are the positions in the old and new sequence at
// which the change applies. For changes to a map entry Key is the entry
// key.
type Change struct {
	Op   Op
	From form.Form
	To   form.Form

	FromIndex int
	ToIndex   int
	Key       form.Form

	// Text holds the character diff of an OpString change.
	Text []diffpatch.Diff
	// Changes holds the children of OpElems, OpEntries and OpMembers.
	Changes []*Change
}

func MakeDiff(from, to form.Form) *Change {
	switch {
	case from == nil:
		return &Change{Op: OpInsert, To: to}
	case to == nil:
		return &Change{Op: OpDelete, From: from}
	default:
		return &Change{Op: OpReplace, From: from, To: to}
	}
}
