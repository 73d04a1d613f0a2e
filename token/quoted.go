package token

// quoted returns the length of a double quoted string at the start of d.
// A backslash escapes the following byte unless that byte is a newline. The
// closing quote is optional so that an unterminated string runs to the end
// of input (or to the offending backslash).
func quoted(d []byte) int {
	if d[0] != '"' {
		return 0
	}
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1
		case '\\':
			if i+1 == len(d) || d[i+1] == '\n' {
				return i
			}
			i += 2
		default:
			i++
		}
	}
	return i
}

// IsTerminated reports whether s, the text of a string token, ends with an
// unescaped closing quote.
func IsTerminated(s string) bool {
	if len(s) < 2 || s[0] != '"' {
		return false
	}
	return quoted([]byte(s)) == len(s) && s[len(s)-1] == '"' && !escapedAt(s, len(s)-1)
}

func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j > 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
