// Package decode reads binary NBT documents into tag trees.
//
// Decoding is strict. Every length prefix is checked against the bytes
// that remain before anything is allocated, nesting is bounded, and a
// failed decode returns no partial tree.
//
// # Usage
//
//	root, err := decode.Decode(data)
//
//	// keep the root name, accept any root type
//	name, root, err := decode.DecodeNamed(data, decode.AnyRoot(true))
//
// Compressed input is detected from its magic bytes unless a
// compression is forced with DecodeCompression.
//
// # Errors
//
// Failures are reported with the sentinels ErrUnexpectedEOF,
// ErrUnknownTagType, ErrMalformedLength and ErrMaxDepth, and
// ir.ErrTypeMismatch for a root of the wrong type. Test with errors.Is.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/encode - the inverse of this package
package decode
