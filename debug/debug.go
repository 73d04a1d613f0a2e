package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Read   bool
	Depth  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("ZL_DEBUG_TOKENS")
	d.Read = boolEnv("ZL_DEBUG_READ")
	d.Depth = boolEnv("ZL_DEBUG_DEPTH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Read() bool {
	return d.Read
}
func Depth() bool {
	return d.Depth
}
