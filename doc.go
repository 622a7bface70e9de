// Package nbt ties the NBT packages together behind a Config.
//
// A Config holds the binary dialect settings (byte order, compression,
// root name, empty list element type and decoding limits) and can be
// loaded from YAML with LoadConfig. Decode, Encode, ReadFile and
// WriteFile use it to move Files between bytes and the tag tree.
//
// Diff and Patch compare and update trees through libdiff. Patch works
// on a clone so that a failing change leaves the input untouched.
// JSONPatch applies RFC 6902 patches to the JSON projection of a tree.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/ir - tags, paths and mutation
//   - github.com/signadot/go-nbt/encode - binary encoding
//   - github.com/signadot/go-nbt/decode - binary decoding
//   - github.com/signadot/go-nbt/snbt - text form
//   - github.com/signadot/go-nbt/bridge - JSON, YAML and CBOR
//   - github.com/signadot/go-nbt/libdiff - structural diffs
//   - github.com/signadot/go-nbt/eval - expressions over documents
package nbt
