package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the change undoing c. c is not modified.
func Reverse(c *Change) *Change {
	if c == nil {
		return nil
	}
	res := &Change{
		From:      c.To,
		To:        c.From,
		FromIndex: c.ToIndex,
		ToIndex:   c.FromIndex,
		Key:       c.Key,
	}
	switch c.Op {
	case OpInsert:
		res.Op = OpDelete
	case OpDelete:
		res.Op = OpInsert
	default:
		res.Op = c.Op
	}
	if c.Text != nil {
		res.Text = make([]diffpatch.Diff, len(c.Text))
		for i, d := range c.Text {
			switch d.Type {
			case diffpatch.DiffInsert:
				d.Type = diffpatch.DiffDelete
			case diffpatch.DiffDelete:
				d.Type = diffpatch.DiffInsert
			}
			res.Text[i] = d
		}
	}
	for _, ch := range c.Changes {
		res.Changes = append(res.Changes, Reverse(ch))
	}
	return res
}
