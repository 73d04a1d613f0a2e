package encode

import (
	"bytes"
	"strings"

	"github.com/zachlisp/go-zachlisp/form"
)

func MustString(f form.Form, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(f, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
