package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse       bool
	Materialize bool
	Locate      bool
	Comments    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLPTR_DEBUG_PARSE")
	d.Materialize = boolEnv("YAMLPTR_DEBUG_MATERIALIZE")
	d.Locate = boolEnv("YAMLPTR_DEBUG_LOCATE")
	d.Comments = boolEnv("YAMLPTR_DEBUG_COMMENTS")
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
func Materialize() bool {
	return d.Materialize
}
func Locate() bool {
	return d.Locate
}
func Comments() bool {
	return d.Comments
}
