package parse

import "fmt"

const (
	msgNothingAfterQuote = "EOF: Nothing found after quote"
	msgNothingAfterCaret = "EOF: Nothing found after ^"
	msgNothingAfterMeta  = "EOF: Nothing found after metadata"
	msgUnbalancedQuote   = "EOF: unbalanced quote"
	msgMaxDepth          = "Max nesting depth exceeded"
)

func msgUnmatched(c byte) string {
	return fmt.Sprintf("Unmatched delimiter: %c", c)
}

func msgNoClose(c byte) string {
	return fmt.Sprintf("EOF: no %c found", c)
}
