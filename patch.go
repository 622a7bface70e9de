package nbt

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/libdiff"
)

// Diff lists the changes turning from into to.
func Diff(from, to ir.Tag) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// Patch applies changes to a clone of root and returns the result.
// root is never modified, so a failing change leaves no partial
// update behind.
func Patch(root ir.Tag, changes []libdiff.Change) (ir.Tag, error) {
	if debug.Patch() {
		debug.Logf("patch %d changes\n", len(changes))
		for i := range changes {
			debug.Logf("  %s\n", changes[i].String())
		}
	}
	res, err := libdiff.Apply(ir.Clone(root), changes)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// JSONPatch applies an RFC 6902 patch to the JSON projection of root.
// The patched document is converted back with root as type hint, so
// numbers keep their tag types and keys their order where the patch
// leaves them in place. root is not modified.
func JSONPatch(root ir.Tag, patch []byte) (ir.Tag, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("invalid json patch: %w", err)
	}
	d, err := bridge.Marshal(root, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch result %s\n", out)
	}
	return bridge.Unmarshal(out, format.JSONFormat, root)
}
