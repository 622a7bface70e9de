// Package ir provides the in-memory model of NBT documents, path
// expressions over it, and in-place mutation.
//
// # Tags
//
// A document is a tree of [Tag] values. Tag is a closed sum type; its
// implementations are
//
//   - End: the compound terminator, never stored in a tree
//   - Byte, Short, Int, Long: signed 8, 16, 32 and 64 bit integers
//   - Float, Double: 32 and 64 bit IEEE-754 numbers
//   - String: UTF-8 text
//   - ByteArray, IntArray, LongArray: packed numeric arrays
//   - *List: an ordered sequence of tags of one type
//   - *Compound: an insertion ordered mapping of names to tags
//
// Consumers switch over the concrete types; every switch in this
// module handles all thirteen and treats anything else as an internal
// error.
//
// # Creating Tags
//
//	root := ir.NewCompound().
//	    PutString("name", "world").
//	    Put("items", ir.MustListOf(ir.Int(1), ir.Int(2), ir.Int(3)))
//
// # Reading
//
// The As functions return the stored value or ErrTypeMismatch; there
// is no silent coercion between numeric types.
//
//	n, err := ir.AsInt(tag)
//	name, err := root.GetString("name")
//
// # Paths
//
// A path expression addresses a nested value:
//
//	items[1]
//	player.inventory[0].id
//	'odd.key'[2]
//
// [Resolve] returns a read-only view of the addressed value,
// [ResolveSlot] a short lived handle on its storage, and [ListPath]
// expands the wildcards "*" and "[*]".
//
// # Mutation
//
// [Set], [Remove] and [Insert] edit a tree in place. They are atomic:
// on error the tree is unchanged. Values are cloned on the way in, so
// a tree is always singly owned and acyclic.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/encode - binary encoding
//   - github.com/signadot/go-nbt/decode - binary decoding
//   - github.com/signadot/go-nbt/snbt - text form
package ir
