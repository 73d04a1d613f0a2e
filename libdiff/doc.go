// Package libdiff computes structural differences between forms.
//
// A [Change] describes how to turn one form into another. Lists and
// vectors are diffed by element, maps by key and sets by member; string
// literals get a character level diff. Changes can be rendered, reversed
// and applied with [Patch].
//
//	c := libdiff.Diff(a, b)
//	if c != nil {
//		fmt.Print(c)
//	}
//	b2, err := libdiff.Patch(a, c) // form.Equal(b, b2)
package libdiff
