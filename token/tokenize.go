package token

import "bytes"

// Tokenize appends the tokens of src to dst and returns the result.
//
// At each offset the token classes are tried in a fixed priority order and
// the first non-empty match is taken: whitespace (including commas), the
// two character specials "~@" and "#{", single character specials, string
// literals, line comments, numbers and finally symbols.
func Tokenize(dst []Token, src []byte) []Token {
	line := 1
	i, n := 0, len(src)
	for i < n {
		tt, sz := scanOne(src[i:])
		if sz == 0 {
			// unreachable with the current character classes: every byte
			// starts some token.  Skip it rather than loop.
			i++
			continue
		}
		text := src[i : i+sz]
		dst = append(dst, Token{
			Type:  tt,
			Value: parseValue(tt, text),
			Pos:   Pos{Line: line, Col: i + 1},
		})
		line += bytes.Count(text, []byte{'\n'})
		i += sz
	}
	return dst
}

// TokenizeString is Tokenize for a string input.
func TokenizeString(s string) []Token {
	return Tokenize(nil, []byte(s))
}

func scanOne(d []byte) (TokenType, int) {
	if n := whitespace(d); n != 0 {
		return TWhitespace, n
	}
	if n := specialChars(d); n != 0 {
		return TSpecialChars, n
	}
	if isSpecialChar(d[0]) {
		return TSpecialChar, 1
	}
	if n := quoted(d); n != 0 {
		return TString, n
	}
	if n := comment(d); n != 0 {
		return TComment, n
	}
	if n := number(d); n != 0 {
		return TNumber, n
	}
	if n := symbol(d); n != 0 {
		return TSymbol, n
	}
	return 0, 0
}

func parseValue(tt TokenType, text []byte) Value {
	switch tt {
	case TSpecialChar:
		return CharVal(text[0])
	case TNumber:
		return numberValue(text)
	case TSymbol:
		switch string(text) {
		case "true":
			return BoolVal(true)
		case "false":
			return BoolVal(false)
		}
	}
	return TextVal(string(text))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func whitespace(d []byte) int {
	i := 0
	for i < len(d) && (isSpace(d[i]) || d[i] == ',') {
		i++
	}
	return i
}

func specialChars(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch string(d[:2]) {
	case "~@", "#{":
		return 2
	}
	return 0
}

func isSpecialChar(c byte) bool {
	switch c {
	case '[', ']', '{', '}', '(', ')', '\'', '`', '~', '^', '@':
		return true
	}
	return false
}

func comment(d []byte) int {
	if d[0] != ';' {
		return 0
	}
	i := 1
	for i < len(d) && d[i] != '\n' && d[i] != '\r' {
		i++
	}
	return i
}

func isSymbolChar(c byte) bool {
	if isSpace(c) {
		return false
	}
	switch c {
	case '[', ']', '{', '}', '(', ')', '\'', '"', '`', ',', ';':
		return false
	}
	return true
}

func symbol(d []byte) int {
	i := 0
	for i < len(d) && isSymbolChar(d[i]) {
		i++
	}
	return i
}
