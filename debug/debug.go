package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("JSONPARSER_DEBUG_SCAN")
	d.Parse = boolEnv("JSONPARSER_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}

func Parse() bool {
	return d.Parse
}
