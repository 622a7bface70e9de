// Package format holds the enumerations shared by the binary codec, the
// text encoders and the nbt command: byte order, compression and text
// output format.
//
// # Usage
//
//	e, err := format.ParseEndian("little")
//	c, err := format.ParseCompression("gzip")
//	f, err := format.ParseFormat("snbt")
//
// All three types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler so they can be used directly in configuration
// files.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/encode - binary encoder
//   - github.com/signadot/go-nbt/decode - binary decoder
//   - github.com/signadot/go-nbt/compress - compression wrapper
package format
