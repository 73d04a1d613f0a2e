package token

import (
	"bytes"
	"strconv"
)

// number returns the length of a number at the start of d: one or more
// ascii digits optionally followed by '.' and zero or more digits.
func number(d []byte) int {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0
	}
	if digits == len(d) || d[digits] != '.' {
		return digits
	}
	return digits + 1 + asciiDigits(d[digits+1:])
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// numberValue converts the text of a number token.  Integers which do not
// fit in an int64 become floats; anything unparsable is kept as text.
func numberValue(text []byte) Value {
	s := string(text)
	if number(text) != len(text) {
		return TextVal(s)
	}
	if bytes.IndexByte(text, '.') == -1 {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return IntVal(i)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return TextVal(s)
	}
	return FloatVal(f)
}
