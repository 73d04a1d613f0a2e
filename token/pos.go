package token

import "fmt"

// Pos is the position of the start of a token.
//
// Line is 1-based and advances by the number of newlines inside each
// preceding token. Col is the 1-based byte offset of the token start
// within the whole input, not within its line.
type Pos struct {
	Line int
	Col  int
}

// Offset returns the 0-based byte offset of the position in the input.
func (p Pos) Offset() int {
	return p.Col - 1
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}
