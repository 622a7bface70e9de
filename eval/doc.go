// Package eval evaluates expressions over an NBT document.
//
// Expressions are written in the expr language
// (github.com/expr-lang/expr). The document is available as the
// variable root, projected to plain values: compounds are maps,
// numbers are int64 or float64, and lists and arrays are slices.
//
// # Usage
//
//	res, err := eval.Eval(root, `getpath("Data.Player.Health") > 10`)
//
// # Functions
//
//   - getpath(path) returns the plain value at path.
//   - listpath(path) returns the plain values matched by a wildcard path.
//   - typeof(path) returns the tag type name at path, e.g. "Compound".
//   - exists(path) reports whether path resolves.
//   - tag(path) returns the SNBT text of the tag at path.
//
// The expr builtins remain available, so len(getpath("items")) counts
// list elements and compound keys.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/ir - paths and tags
//   - github.com/signadot/go-nbt/bridge - plain value projection
package eval
