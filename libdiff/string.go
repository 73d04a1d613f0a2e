package libdiff

import (
	"strings"

	"github.com/zachlisp/go-zachlisp/form"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs the text of two string literals. When most of the text
// changed the result is a plain replacement.
func DiffString(from, to *form.Scalar) *Change {
	a, b := from.Token.Value.Text, to.Token.Value.Text
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, doMultiLine))
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	if diffSize > max(len(a), len(b))/2 {
		return MakeDiff(from, to)
	}
	return &Change{Op: OpString, From: from, To: to, Text: diffs}
}

func renderText(diffs []diffpatch.Diff) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	b.WriteByte('"')
	return b.String()
}
