// Package debug holds env-gated debug switches. The library never logs on
// its normal path; these exist for poking at the pipeline during
// development.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JZON_DEBUG_PARSE")
	d.Tokens = boolEnv("JZON_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Tokens() bool {
	return d.Tokens
}
