// Package encode writes tag trees in the binary NBT format.
//
// A document is written as one named entry: the root's type byte, its
// name as a length prefixed string, then its payload. Compound payloads
// are a sequence of named entries closed by an End byte; list payloads
// are an element type byte, a 32 bit count and the bare element
// payloads.
//
// # Usage
//
//	root := ir.NewCompound().PutString("name", "world")
//	data, err := encode.Marshal(root)
//
//	// Bedrock dialect, gzip wrapped
//	err = encode.Encode(root, w,
//	    encode.EncodeEndian(format.LittleEndian),
//	    encode.EncodeCompression(format.GzipCompression))
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/ir - tag model
//   - github.com/signadot/go-nbt/decode - the inverse of this package
//   - github.com/signadot/go-nbt/compress - compression containers
package encode
