package token

import (
	"fmt"
	"math"
)

type TokenType int

const (
	TWhitespace TokenType = iota
	TSpecialChars
	TSpecialChar
	TString
	TComment
	TNumber
	TSymbol
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TWhitespace:   "TWhitespace",
		TSpecialChars: "TSpecialChars",
		TSpecialChar:  "TSpecialChar",
		TString:       "TString",
		TComment:      "TComment",
		TNumber:       "TNumber",
		TSymbol:       "TSymbol",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsSkipped reports whether tokens of type t carry no meaning for a reader.
func (t TokenType) IsSkipped() bool {
	return t == TWhitespace || t == TComment
}

type ValueKind int

const (
	BoolValue ValueKind = iota
	CharValue
	IntValue
	FloatValue
	TextValue
)

func (k ValueKind) String() string {
	switch k {
	case BoolValue:
		return "bool"
	case CharValue:
		return "char"
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case TextValue:
		return "text"
	}
	return "<unknown value kind>"
}

// Value is the parsed value of a token. Only the field selected by Kind is
// meaningful.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Char  byte
	Int   int64
	Float float64
	Text  string
}

func BoolVal(v bool) Value { return Value{Kind: BoolValue, Bool: v} }
func CharVal(v byte) Value { return Value{Kind: CharValue, Char: v} }
func IntVal(v int64) Value { return Value{Kind: IntValue, Int: v} }
func FloatVal(v float64) Value { return Value{Kind: FloatValue, Float: v} }
func TextVal(v string) Value { return Value{Kind: TextValue, Text: v} }

// Equal compares the active fields of two values. Floats compare by bit
// pattern so that equality agrees with hashing.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case BoolValue:
		return v.Bool == o.Bool
	case CharValue:
		return v.Char == o.Char
	case IntValue:
		return v.Int == o.Int
	case FloatValue:
		return math.Float64bits(v.Float) == math.Float64bits(o.Float)
	default:
		return v.Text == o.Text
	}
}

func (v Value) String() string {
	switch v.Kind {
	case BoolValue:
		return fmt.Sprintf("%t", v.Bool)
	case CharValue:
		return string(v.Char)
	case IntValue:
		return fmt.Sprintf("%d", v.Int)
	case FloatValue:
		return fmt.Sprintf("%g", v.Float)
	default:
		return v.Text
	}
}

type Token struct {
	Type  TokenType
	Value Value
	Pos   Pos
}

// Equal reports whether two tokens have the same type and value. Positions
// are not compared.
func (t *Token) Equal(o *Token) bool {
	return t.Type == o.Type && t.Value.Equal(o.Value)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Value.String()
}
