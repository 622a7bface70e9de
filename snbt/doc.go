// Package snbt reads and writes stringified NBT, the text form of a tag
// tree used by commands and editors:
//
//	{name:"world",items:[1,2,3],pos:[I;10,64,-3],health:20.0f,ok:1b}
//
// Integers carry a type suffix (b, s, none, L), floating point values f
// or d, and arrays a type prefix (B;, I;, L;). Parsing an unsuffixed
// integer yields an Int and an unsuffixed decimal a Double; true and
// false are the Bytes 1 and 0. A bare word that is neither a number nor
// a boolean is a String. Encoding always quotes strings, so encoding
// then parsing gives back an equal tree.
//
// # Usage
//
//	s := snbt.MustString(root)
//
//	// indented and colored for a terminal
//	err := snbt.Encode(root, os.Stdout,
//	    snbt.EncodePretty(true),
//	    snbt.EncodeColors(snbt.NewColors()))
//
//	root, err := snbt.Parse([]byte(`{a:1b,b:[L;1L,2L]}`))
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/ir - tag model
package snbt
