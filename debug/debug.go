package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Sort  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YARS_DEBUG_PARSE")
	d.Sort = boolEnv("YARS_DEBUG_SORT")
	d.LSP = boolEnv("YARS_DEBUG_LSP")
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
func Sort() bool {
	return d.Sort
}
func LSP() bool {
	return d.LSP
}
