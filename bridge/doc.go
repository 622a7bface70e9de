// Package bridge projects tag trees onto plain Go values, and through
// them onto YAML, JSON and CBOR, and brings such values back.
//
// The projection loses the distinction between numeric widths and
// between lists and arrays. Re-importing therefore takes an optional
// hint: a tree of the expected shape, usually the document the values
// were projected from, whose tag types are reused wherever the value
// is compatible.
//
//	v := bridge.ToAny(root)
//	// ... edit v ...
//	back, err := bridge.FromAny(v, root)
//
// Compound key order survives YAML and JSON, which are produced and
// read as ordered mappings. CBOR output uses core deterministic
// encoding and so sorts keys.
package bridge
