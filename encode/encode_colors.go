package encode

import (
	"strings"

	"github.com/zachlisp/go-zachlisp/form"

	"github.com/fatih/color"
)

type Colorable struct {
	Type form.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	DelimColor ColorAttr = iota
	TagColor
	ValueColor
	SymbolColor
	NumberColor
	StringColor
	BoolColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range form.Types() {
		if t.IsLeaf() {
			continue
		}
		colors.Map[Colorable{Type: t, Attr: DelimColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: form.SetType, Attr: DelimColor}] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[Colorable{Type: form.MapType, Attr: DelimColor}] = color.RGB(128, 168, 196).SprintfFunc()

	able := Colorable{Type: form.ReaderErrorType, Attr: TagColor}
	colors.Map[able] = color.New(color.FgRed, color.Bold).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RedString

	able.Type = form.ScalarType
	able.Attr = SymbolColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = NumberColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = StringColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = BoolColor
	colors.Map[able] = color.CyanString
	able.Attr = DelimColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t form.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t form.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
