package encode

import "github.com/signadot/go-nbt/ir"

func MustBytes(root ir.Tag, opts ...EncodeOption) []byte {
	d, err := Marshal(root, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
