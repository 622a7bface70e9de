package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode   bool
	Encode   bool
	Compress bool
	Diff     bool
	Patch    bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NBT_DEBUG_DECODE")
	d.Encode = boolEnv("NBT_DEBUG_ENCODE")
	d.Compress = boolEnv("NBT_DEBUG_COMPRESS")
	d.Diff = boolEnv("NBT_DEBUG_DIFF")
	d.Patch = boolEnv("NBT_DEBUG_PATCH")
	d.Eval = boolEnv("NBT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Compress() bool {
	return d.Compress
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
