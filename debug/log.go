package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/form"
	"github.com/zachlisp/go-zachlisp/token"
)

// Logf writes a formatted message to stderr. Forms and tokens among args
// are rendered as zachlisp text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case form.Form:
			args[i] = encode.MustString(x)
		case []form.Form:
			strs := make([]string, len(x))
			for j, f := range x {
				strs[j] = encode.MustString(f)
			}
			args[i] = strs
		case token.Token:
			args[i] = x.Info() + " " + x.String()
		case *token.Token:
			args[i] = x.Info() + " " + x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
