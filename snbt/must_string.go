package snbt

import (
	"bytes"
	"strings"

	"github.com/signadot/go-nbt/ir"
)

func MustString(t ir.Tag, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
