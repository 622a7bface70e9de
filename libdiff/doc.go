// Package libdiff computes the structural difference between two tag
// trees as a list of path addressed changes, and applies such lists.
//
// # Usage
//
//	changes := libdiff.Diff(old, new)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
//	// Apply the changes to a copy of old
//	res, err := libdiff.Apply(ir.Clone(old), changes)
//
// Changes are ordered so that applying them one after the other is
// valid: list removals are given at the index the element has once the
// earlier changes are applied. Compound keys added by a change are
// appended, so the result of Apply equals the target up to the order
// of added keys.
//
// Reverse inverts a change list. MarshalChanges and UnmarshalChanges
// store lists as YAML with values in SNBT.
//
// # Related Packages
//
//   - github.com/signadot/go-nbt/ir - tag model and mutation
//   - github.com/signadot/go-nbt/snbt - value text in rendered changes
package libdiff
