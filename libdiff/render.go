package libdiff

import (
	"fmt"
	"strings"

	"github.com/zachlisp/go-zachlisp/encode"
)

// String renders c one change per line. Each line starts with + for an
// insertion, - for a deletion or ~ for a replacement, followed by the path
// to the change.
func (c *Change) String() string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	c.write(&b, "")
	return b.String()
}

func (c *Change) write(b *strings.Builder, path string) {
	switch c.Op {
	case OpInsert:
		writeLine(b, "+", path, encode.MustString(c.To))
	case OpDelete:
		writeLine(b, "-", path, encode.MustString(c.From))
	case OpReplace:
		writeLine(b, "~", path, encode.MustString(c.From)+" -> "+encode.MustString(c.To))
	case OpString:
		writeLine(b, "~", path, renderText(c.Text))
	case OpElems:
		for _, ch := range c.Changes {
			i := ch.FromIndex
			if ch.Op == OpInsert {
				i = ch.ToIndex
			}
			ch.write(b, fmt.Sprintf("%s[%d]", path, i))
		}
	case OpEntries:
		for _, ch := range c.Changes {
			ch.write(b, path+"{"+encode.MustString(ch.Key)+"}")
		}
	case OpMembers:
		for _, ch := range c.Changes {
			ch.write(b, path+"#{}")
		}
	}
}

func writeLine(b *strings.Builder, sign, path, text string) {
	b.WriteString(sign)
	if path != "" {
		b.WriteString(" " + path)
	}
	b.WriteString(" " + text + "\n")
}
